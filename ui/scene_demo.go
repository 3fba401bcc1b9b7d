package ui

import (
	"fmt"
	"log"

	"popup-ebiten/core"
	"popup-ebiten/data"
	"popup-ebiten/event"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// DemoSceneはポップアップのキューイング挙動を確認するためのシーンです。
// 起動直後は台本（DemoTimeline）が自動でポップアップを連続発行し、
// その後は画面上のボタンから手動で発行できます。
type DemoScene struct {
	resources *data.SharedResources
	manager   *SceneManager

	uiFactory    *UIFactory
	ui           *ebitenui.UI
	popupWindow  *PopupWindow
	popupManager *PopupManager

	world         donburi.World
	stateEntry    *donburi.Entry
	timelineEntry *donburi.Entry

	// statusText はHUDのラベルで、毎フレーム書き換えられます。
	statusText *widget.Text

	tick int
}

// NewDemoSceneは新しいデモシーンを作成します
func NewDemoScene(res *data.SharedResources, manager *SceneManager) *DemoScene {
	s := &DemoScene{
		resources: res,
		manager:   manager,
		uiFactory: NewUIFactory(&res.Config, res.Fonts),
	}

	// プレゼンタとマネージャはイベントチャネルを共有します。
	eventChannel := make(chan event.PopupEvent, 10)
	s.popupWindow = NewPopupWindow(s.uiFactory, eventChannel)
	s.popupManager = NewPopupManager(&res.Config, s.popupWindow, res.PopupDefaults, eventChannel)

	s.world = donburi.NewWorld()

	stateEntity := s.world.Create(PopupUIStateComponent)
	s.stateEntry = s.world.Entry(stateEntity)
	donburi.SetValue(s.stateEntry, PopupUIStateComponent, PopupUIState{})

	timelineEntity := s.world.Create(DemoTimelineComponent)
	s.timelineEntry = s.world.Entry(timelineEntity)
	donburi.SetValue(s.timelineEntry, DemoTimelineComponent, DemoTimeline{
		Entries: s.buildTimeline(),
	})

	s.ui = s.createUI()
	return s
}

// buildTimelineはデモの台本を構築します。
// 序盤に3連続のShowでキューイングを見せ、その後デフォルト表示と
// コールバック付きの確認ダイアログを見せます。
func (s *DemoScene) buildTimeline() []DemoTimelineEntry {
	return []DemoTimelineEntry{
		{AtTick: 60, Run: func(pm *PopupManager) {
			pm.ShowMessageWith("Notice A", "First of three queued popups.")
		}},
		{AtTick: 70, Run: func(pm *PopupManager) {
			pm.ShowMessageWith("Notice B", "Queued while A is visible.")
		}},
		{AtTick: 80, Run: func(pm *PopupManager) {
			pm.ShowMessageWith("Notice C", "Queued behind B.")
		}},
		{AtTick: 240, Run: func(pm *PopupManager) {
			// オプション完全未指定。デフォルトテンプレートがそのまま表示されます。
			pm.Show(core.ShowOptions{})
		}},
		{AtTick: 400, Run: func(pm *PopupManager) {
			pm.Show(core.ShowOptions{
				Title:       "Delete save data?",
				Description: "This cannot be undone.",
				ConfirmText: "Delete",
				CancelText:  "Keep",
				OnConfirm: func() {
					log.Println("デモ: 削除が選択されました。")
				},
				OnCancel: func() {
					log.Println("デモ: キャンセルが選択されました。")
				},
			})
		}},
	}
}

func (s *DemoScene) createUI() *ebitenui.UI {
	c := s.resources.Config.UI

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	s.statusText = widget.NewText(
		widget.TextOpts.Text("", s.resources.Fonts.Body, c.Colors.Gray),
	)

	headerText := widget.NewText(
		widget.TextOpts.Text("Popup Queue Demo", s.resources.Fonts.Title, c.Colors.White),
	)

	burstButton := s.uiFactory.NewNavButton("Burst A/B/C", func(args *widget.ButtonClickedEventArgs) {
		s.popupManager.ShowMessageWith("Notice A", "First of three queued popups.")
		s.popupManager.ShowMessageWith("Notice B", "Queued while A is visible.")
		s.popupManager.ShowMessageWith("Notice C", "Queued behind B.")
	})

	defaultButton := s.uiFactory.NewNavButton("Default popup", func(args *widget.ButtonClickedEventArgs) {
		s.popupManager.Show(core.ShowOptions{})
	})

	confirmButton := s.uiFactory.NewNavButton("Confirm popup", func(args *widget.ButtonClickedEventArgs) {
		s.popupManager.ShowConfirm("Proceed?", "Confirm callbacks are logged.", func() {
			log.Println("デモ: 確認ボタンが押されました。")
		})
	})

	hideButton := s.uiFactory.NewNavButton("Force hide", func(args *widget.ButtonClickedEventArgs) {
		s.popupManager.Hide()
	})

	backButton := s.uiFactory.NewNavButton("Back to title", func(args *widget.ButtonClickedEventArgs) {
		s.manager.GoToTitleScene()
	})

	panel := NewPanel(&PanelOptions{
		Padding:         widget.NewInsetsSimple(c.Popup.Padding),
		Spacing:         c.Popup.Spacing,
		BorderThickness: c.Popup.BorderThickness,
		PanelWidth:      c.Popup.WindowWidth / 2,
	}, s.uiFactory.imageGenerator, headerText, s.statusText, burstButton, defaultButton, confirmButton, hideButton, backButton)

	panel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		Padding:            widget.NewInsetsSimple(20),
	}
	rootContainer.AddChild(panel)

	return &ebitenui.UI{Container: rootContainer}
}

// runTimelineは現在のtickに達した台本エントリを順に実行します
func (s *DemoScene) runTimeline() {
	timeline := DemoTimelineComponent.Get(s.timelineEntry)
	for timeline.NextIndex < len(timeline.Entries) {
		entry := timeline.Entries[timeline.NextIndex]
		if s.tick < entry.AtTick {
			break
		}
		entry.Run(s.popupManager)
		timeline.NextIndex++
	}
}

// applyEventsは処理済みイベントをHUD用の状態へ反映します
func (s *DemoScene) applyEvents(events []event.PopupEvent) {
	state := PopupUIStateComponent.Get(s.stateEntry)
	for _, e := range events {
		switch ev := e.(type) {
		case event.PopupShownEvent:
			state.ActiveTitle = ev.Data.Title
			state.DisplayedCount++
		case event.PopupHiddenEvent:
			state.ActiveTitle = ""
		case event.PopupConfirmedEvent:
			state.ConfirmedCount++
		case event.PopupCanceledEvent:
			state.CanceledCount++
		case event.PopupQueueDrainedEvent:
			log.Println("ポップアップの待ち行列が空になりました。")
		}
	}
}

// Updateはシーンの状態を更新します
func (s *DemoScene) Update() error {
	s.tick++
	s.runTimeline()

	// ポップアップ表示中は背後のUIを操作できません（モーダル）。
	if !s.popupManager.IsBusy() {
		s.ui.Update()
	}

	s.popupWindow.Update()
	events := s.popupManager.Update()
	s.applyEvents(events)

	state := PopupUIStateComponent.Get(s.stateEntry)
	s.statusText.Label = fmt.Sprintf(
		"busy: %v  queue: %d\nshown: %d  ok: %d  cancel: %d",
		s.popupManager.IsBusy(),
		s.popupManager.QueueLen(),
		state.DisplayedCount,
		state.ConfirmedCount,
		state.CanceledCount,
	)

	return nil
}

// Drawはシーンを描画します
func (s *DemoScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.resources.Config.UI.Colors.Background)
	s.ui.Draw(screen)

	// ポップアップは最前面に描画します。
	s.popupWindow.Draw(screen)
}

// Layoutは画面サイズを返します
func (s *DemoScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.resources.Config.UI.Screen.Width, s.resources.Config.UI.Screen.Height
}
