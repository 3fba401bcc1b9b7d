package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// PanelOptions はNewPanelの外観オプションです。
type PanelOptions struct {
	Padding         widget.Insets
	Spacing         int
	BackgroundColor color.Color
	BorderThickness float32
	PanelWidth      int
	PanelHeight     int
}

// NewPanel は、指定されたオプションに基づいて汎用的なパネルウィジェットを作成します。
func NewPanel(opts *PanelOptions, imageGenerator *UIImageGenerator, children ...widget.PreferredSizeLocateableWidget) *widget.Container {
	var bg *image.NineSlice
	if opts.BorderThickness > 0 {
		// 枠線付きのパネル画像を生成
		bg = imageGenerator.createPopupPanelNineSlice(opts.BorderThickness)
	} else {
		backgroundColor := opts.BackgroundColor
		if backgroundColor == nil {
			backgroundColor = color.NRGBA{30, 35, 55, 230}
		}
		bg = image.NewNineSliceColor(backgroundColor)
	}

	panelContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(bg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(opts.Padding),
			widget.RowLayoutOpts.Spacing(opts.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(opts.PanelWidth, opts.PanelHeight),
		),
	)

	for _, child := range children {
		panelContainer.AddChild(child)
	}

	return panelContainer
}
