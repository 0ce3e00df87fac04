package osd

import "testing"

func TestToastLifecycle(t *testing.T) {
	toast := NewToast(1, 0.5)
	if toast.Visible() {
		t.Fatalf("new toast should be hidden")
	}

	toast.Show("Speed 0.6x")
	if !toast.Visible() || toast.Alpha() != 1 || toast.Text() != "Speed 0.6x" {
		t.Fatalf("shown toast should be opaque")
	}

	toast.Update(0.5)
	if toast.Alpha() != 1 {
		t.Fatalf("alpha should hold at 1, got %v", toast.Alpha())
	}

	toast.Update(0.75)
	if a := toast.Alpha(); a <= 0 || a >= 1 {
		t.Fatalf("alpha should be fading, got %v", a)
	}

	toast.Update(1)
	if toast.Visible() {
		t.Fatalf("toast should be gone after the fade, alpha=%v", toast.Alpha())
	}

	toast.Update(1)
	if toast.Visible() {
		t.Fatalf("finished toast should stay hidden")
	}
}

func TestToastShowRestarts(t *testing.T) {
	toast := NewToast(0.2, 0.2)
	toast.Show("Playing")
	toast.Update(0.3)
	toast.Show("Paused")
	if toast.Alpha() != 1 || toast.Text() != "Paused" {
		t.Fatalf("Show should restart at full opacity")
	}
}
