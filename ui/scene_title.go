package ui

import (
	"popup-ebiten/data"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// TitleSceneはタイトル画面のシーンです
type TitleScene struct {
	resources *data.SharedResources
	manager   *SceneManager
	ui        *ebitenui.UI
	exit      bool
}

// NewTitleSceneは新しいタイトルシーンを作成します
func NewTitleScene(res *data.SharedResources, manager *SceneManager) *TitleScene {
	s := &TitleScene{
		resources: res,
		manager:   manager,
	}
	s.ui = s.createUI()
	return s
}

func (s *TitleScene) createUI() *ebitenui.UI {
	c := s.resources.Config.UI
	uiFactory := NewUIFactory(&s.resources.Config, s.resources.Fonts)

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	titleText := widget.NewText(
		widget.TextOpts.Text("Popup Queue Demo", s.resources.Fonts.Title, c.Colors.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	)

	startButton := uiFactory.NewNavButton("Start Demo", func(args *widget.ButtonClickedEventArgs) {
		s.manager.GoToDemoScene()
	})

	quitButton := uiFactory.NewNavButton("Quit", func(args *widget.ButtonClickedEventArgs) {
		s.exit = true
	})

	panel := NewPanel(&PanelOptions{
		Padding:         widget.NewInsetsSimple(c.Popup.Padding * 2),
		Spacing:         c.Popup.Spacing * 2,
		BorderThickness: c.Popup.BorderThickness,
		PanelWidth:      c.Popup.WindowWidth,
	}, uiFactory.imageGenerator, titleText, startButton, quitButton)

	panel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	rootContainer.AddChild(panel)

	return &ebitenui.UI{Container: rootContainer}
}

// Updateはシーンの状態を更新します
func (s *TitleScene) Update() error {
	if s.exit {
		return ebiten.Termination
	}
	s.ui.Update()
	return nil
}

// Drawはシーンを描画します
func (s *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.resources.Config.UI.Colors.Background)
	s.ui.Draw(screen)
}

// Layoutは画面サイズを返します
func (s *TitleScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.resources.Config.UI.Screen.Width, s.resources.Config.UI.Screen.Height
}
