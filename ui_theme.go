package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newPanelTheme(fontFace *text.Face, panel color.Color) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panel),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{60, 60, 60, 255}),
				Hover:   solidNineSlice(color.RGBA{80, 80, 80, 255}),
				Pressed: solidNineSlice(color.RGBA{40, 40, 40, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.White,
			},
		},
		SliderTheme: &widget.SliderParams{
			TrackImage: &widget.SliderTrackImage{
				Idle:  solidNineSlice(color.RGBA{90, 90, 90, 255}),
				Hover: solidNineSlice(color.RGBA{110, 110, 110, 255}),
			},
			HandleImage: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{200, 200, 200, 255}),
				Hover:   solidNineSlice(color.RGBA{230, 230, 230, 255}),
				Pressed: solidNineSlice(color.RGBA{170, 170, 170, 255}),
			},
		},
	}
}
