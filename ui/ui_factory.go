package ui

import (
	"popup-ebiten/data"

	"github.com/ebitenui/ebitenui/widget"
)

// UIFactory はUIコンポーネントの生成とスタイリングを一元的に管理します。
type UIFactory struct {
	Config         *data.Config
	Fonts          *data.Fonts
	imageGenerator *UIImageGenerator
}

// NewUIFactory は新しいUIFactoryのインスタンスを作成します。
func NewUIFactory(config *data.Config, fonts *data.Fonts) *UIFactory {
	return &UIFactory{
		Config:         config,
		Fonts:          fonts,
		imageGenerator: NewUIImageGenerator(config),
	}
}

// NewPopupButton はポップアップ用のスタイル付きボタンを生成します。
func (f *UIFactory) NewPopupButton(
	label string,
	clickedHandler func(args *widget.ButtonClickedEventArgs),
) *widget.Button {
	buttonImage := f.imageGenerator.createPopupButtonImageSet(f.Config.UI.Popup.BorderThickness)

	return widget.NewButton(
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text(label, f.Fonts.Button, &widget.ButtonTextColor{
			Idle: f.Config.UI.Colors.White,
		}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(8)),
		widget.ButtonOpts.ClickedHandler(clickedHandler),
	)
}

// NewNavButton はシーン遷移などに使う汎用ボタンを生成します。
func (f *UIFactory) NewNavButton(
	label string,
	clickedHandler func(args *widget.ButtonClickedEventArgs),
) *widget.Button {
	buttonImage := f.imageGenerator.createPopupButtonImageSet(f.Config.UI.Popup.BorderThickness)

	return widget.NewButton(
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text(label, f.Fonts.Body, &widget.ButtonTextColor{
			Idle: f.Config.UI.Colors.White,
		}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(10)),
		widget.ButtonOpts.ClickedHandler(clickedHandler),
	)
}
