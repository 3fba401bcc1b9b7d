package ui

import (
	"log"

	"popup-ebiten/core"
	"popup-ebiten/event"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// PopupWindow はPopupDataを固定のウィジェットツリーに束縛して描画する
// プレゼンタです。core.PopupPresenterを実装します。
// 表示のたびにウィジェットツリーを作り直すため、クリックハンドラが
// 古いデータに束縛されたまま残ることはありません。
type PopupWindow struct {
	uiFactory    *UIFactory
	eventChannel chan event.PopupEvent

	ui         *ebitenui.UI
	transition *PopupTransition
	current    *core.PopupData
	isVisible  bool

	// オフスクリーン合成用のレイヤです。フェード+スケールを適用するため、
	// ウィジェットツリーは一旦ここに描画されます。
	layer        *ebiten.Image
	overlayPixel *ebiten.Image
}

// NewPopupWindow は新しいPopupWindowのインスタンスを作成します。
func NewPopupWindow(uiFactory *UIFactory, eventChannel chan event.PopupEvent) *PopupWindow {
	return &PopupWindow{
		uiFactory:    uiFactory,
		eventChannel: eventChannel,
		transition:   NewPopupTransition(uiFactory.Config.UI.Popup.TransitionTicks),
	}
}

// Display はPopupDataからウィジェットツリーを構築し、表示トランジションを開始します。
func (w *PopupWindow) Display(data *core.PopupData) {
	if w.isVisible {
		// マネージャが同時表示を防ぐため、通常ここには来ません。
		log.Printf("警告: 表示中に新しいポップアップ %q が渡されました。置き換えます。", data.Title)
	}
	w.current = data
	w.ui = &ebitenui.UI{Container: w.createUI(data)}
	w.isVisible = true
	w.transition.StartShow()
	log.Printf("ポップアップを表示します: %q", data.Title)
}

// ForceHide は非表示トランジションを直ちに開始します。
// 表示中でなければ何もしません。
func (w *PopupWindow) ForceHide() {
	if !w.isVisible {
		return
	}
	w.beginHide()
}

// IsVisible はポップアップが画面上にあるかどうかを返します。
func (w *PopupWindow) IsVisible() bool {
	return w.isVisible
}

// Update はトランジションを進め、完了時のコールバック呼び出しと
// イベント発行を行います。毎フレーム呼び出してください。
func (w *PopupWindow) Update() {
	if !w.isVisible {
		return
	}

	showFinished, hideFinished := w.transition.Update()

	if showFinished {
		if w.current.OnShow != nil {
			w.current.OnShow()
		}
		w.eventChannel <- event.PopupShownEvent{Data: w.current}
	}

	// 入力は完全表示中のみ受け付けます。
	// トランジション中の半透明なボタンはクリックできません。
	if w.transition.Phase() == PhaseShown && w.ui != nil {
		w.ui.Update()
	}

	if hideFinished {
		finished := w.current
		w.current = nil
		w.ui = nil
		w.isVisible = false
		if finished.OnHide != nil {
			finished.OnHide()
		}
		// 非表示完了は1回の非表示につき一度だけ通知されます。
		w.eventChannel <- event.PopupHiddenEvent{}
		log.Printf("ポップアップを非表示にしました: %q", finished.Title)
	}
}

// Draw はオーバーレイとポップアップ本体を描画します。
// トランジション中はレイヤ全体にフェードとスケールを適用します。
func (w *PopupWindow) Draw(screen *ebiten.Image) {
	if !w.isVisible || w.ui == nil {
		return
	}

	alpha := w.transition.Alpha()

	// 背景を暗くするオーバーレイ。スケールの影響を受けないよう別に描画します。
	w.drawOverlay(screen, alpha)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	if w.layer == nil || w.layer.Bounds().Dx() != sw || w.layer.Bounds().Dy() != sh {
		w.layer = ebiten.NewImage(sw, sh)
	}
	w.layer.Clear()
	w.ui.Draw(w.layer)

	scale := w.transition.Scale()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(sw)/2, -float64(sh)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(sw)/2, float64(sh)/2)
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(w.layer, op)
}

// drawOverlay は画面全体を覆う半透明のオーバーレイを描画します。
func (w *PopupWindow) drawOverlay(screen *ebiten.Image, alpha float32) {
	if w.overlayPixel == nil {
		w.overlayPixel = ebiten.NewImage(1, 1)
		w.overlayPixel.Fill(w.uiFactory.Config.UI.Colors.Overlay)
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw), float64(sh))
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(w.overlayPixel, op)
}

// beginHide は非表示トランジションを開始します。二重開始は無視されます。
func (w *PopupWindow) beginHide() {
	if w.transition.Phase() == PhaseHiding {
		return
	}
	w.transition.StartHide()
}

// createUI はPopupDataから実際のウィジェットツリーを構築します。
func (w *PopupWindow) createUI(data *core.PopupData) *widget.Container {
	c := w.uiFactory.Config.UI

	// 中央配置用のルートコンテナ
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// タイトルと本文のテキストウィジェット
	titleTextWidget := widget.NewText(
		widget.TextOpts.Text(data.Title, w.uiFactory.Fonts.Title, c.Colors.White),
	)
	descriptionTextWidget := widget.NewText(
		widget.TextOpts.Text(data.Description, w.uiFactory.Fonts.Body, c.Colors.Gray),
	)

	// ボタン行。確認ボタンは常に表示し、キャンセルボタンは
	// ラベルが空でない場合のみ追加します。
	buttonRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(c.Popup.ButtonSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	)

	confirmButton := w.uiFactory.NewPopupButton(data.ConfirmText, func(args *widget.ButtonClickedEventArgs) {
		if data.OnConfirm != nil {
			data.OnConfirm()
		}
		w.eventChannel <- event.PopupConfirmedEvent{Data: data}
		if data.HideOnConfirm {
			w.beginHide()
		}
	})
	buttonRow.AddChild(confirmButton)

	if data.HasCancel() {
		cancelButton := w.uiFactory.NewPopupButton(data.CancelText, func(args *widget.ButtonClickedEventArgs) {
			if data.OnCancel != nil {
				data.OnCancel()
			}
			w.eventChannel <- event.PopupCanceledEvent{Data: data}
			if data.HideOnCancel {
				w.beginHide()
			}
		})
		buttonRow.AddChild(cancelButton)
	}

	panel := NewPanel(&PanelOptions{
		Padding:         widget.NewInsetsSimple(c.Popup.Padding),
		Spacing:         c.Popup.Spacing,
		BorderThickness: c.Popup.BorderThickness,
		PanelWidth:      c.Popup.WindowWidth,
	}, w.uiFactory.imageGenerator, titleTextWidget, descriptionTextWidget, buttonRow)

	panel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	rootContainer.AddChild(panel)

	return rootContainer
}
