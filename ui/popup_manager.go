package ui

import (
	"context"
	"log"

	"popup-ebiten/core"
	"popup-ebiten/data"
	"popup-ebiten/event"

	"github.com/looplab/fsm"
)

// ポップアップマネージャの状態機械の定義です。
// busyフラグは「activeステートにあるか」と等価です。
const (
	statePopupIdle   = "idle"
	statePopupActive = "active"

	transitionDisplay = "display"
	transitionDismiss = "dismiss"
)

// PopupManager はポップアップ表示の唯一の司令塔です。
// 表示リクエストを受け付け、表示中であればFIFOの待ち行列に積み、
// 非表示完了イベントを受けて次のポップアップへ進めます。
// シングルトンではなく、所有するシーンが明示的に生成して引き回します。
type PopupManager struct {
	config    *data.Config
	presenter core.PopupPresenter

	// defaultData は未指定フィールドを埋めるプロセス共通のテンプレートです。
	defaultData *core.PopupData

	// queue は表示待ちのPopupDataです。先頭から取り出されます。
	queue []*core.PopupData

	// state はidle/activeの2状態を管理します。
	state *fsm.FSM

	// eventChannel はプレゼンタと共有するイベントチャネルです。
	eventChannel chan event.PopupEvent
}

// NewPopupManager は新しいPopupManagerのインスタンスを作成します。
// defaultData がnilの場合は、ハードコードされたフォールバックを合成します
// （起動時に一度だけ行われる明示的な修復で、ログに残ります）。
func NewPopupManager(
	config *data.Config,
	presenter core.PopupPresenter,
	defaultData *core.PopupData,
	eventChannel chan event.PopupEvent,
) *PopupManager {
	if defaultData == nil {
		defaultData = core.NewDefaultPopupData()
		log.Println("デフォルトポップアップ設定が渡されなかったため、ハードコードされたフォールバックを合成しました。")
	}
	if presenter == nil {
		log.Println("警告: プレゼンタがnilです。ポップアップは表示されません。")
	}
	if eventChannel == nil {
		eventChannel = make(chan event.PopupEvent, 10)
		log.Println("イベントチャネルが渡されなかったため、バッファ付きチャネルを合成しました。")
	}

	return &PopupManager{
		config:      config,
		presenter:   presenter,
		defaultData: defaultData,
		queue:       make([]*core.PopupData, 0),
		state: fsm.NewFSM(
			statePopupIdle,
			fsm.Events{
				{Name: transitionDisplay, Src: []string{statePopupIdle}, Dst: statePopupActive},
				{Name: transitionDismiss, Src: []string{statePopupActive}, Dst: statePopupIdle},
			},
			fsm.Callbacks{},
		),
		eventChannel: eventChannel,
	}
}

// Show は表示リクエストを受け付けます。
// アイドル状態であれば即座に（この呼び出し中に）表示し、
// 表示中であれば待ち行列の末尾に追加します。
// どのような入力の組み合わせでもエラーにはなりません。
func (pm *PopupManager) Show(opts core.ShowOptions) {
	popupData := pm.buildPopupData(opts)

	if pm.IsBusy() {
		pm.queue = append(pm.queue, popupData)
		log.Printf("ポップアップをキューに追加しました: %q (待機数: %d)", popupData.Title, len(pm.queue))
		pm.notify(event.PopupQueuedEvent{Data: popupData, QueueLength: len(pm.queue)})
		return
	}

	pm.display(popupData)
}

// ShowMessage はタイトルのみを指定する簡易版です。Showに委譲します。
func (pm *PopupManager) ShowMessage(title string) {
	pm.Show(core.ShowOptions{Title: title})
}

// ShowMessageWith はタイトルと本文を指定する簡易版です。Showに委譲します。
func (pm *PopupManager) ShowMessageWith(title, description string) {
	pm.Show(core.ShowOptions{Title: title, Description: description})
}

// ShowConfirm は確認コールバック付きの簡易版です。Showに委譲します。
func (pm *PopupManager) ShowConfirm(title, description string, onConfirm core.PopupCallback) {
	pm.Show(core.ShowOptions{Title: title, Description: description, OnConfirm: onConfirm})
}

// Hide は表示中のポップアップの非表示トランジションを直ちに開始します。
// アクティブなポップアップが無い場合は何もしません。
func (pm *PopupManager) Hide() {
	if pm.presenter == nil || !pm.IsBusy() {
		return
	}
	pm.presenter.ForceHide()
}

// Update はプレゼンタから届いたイベントを処理し、処理済みのイベントを返します。
// 非表示完了イベントを受けると待ち行列を前進させます。
// 毎フレーム、プレゼンタのUpdateの後に呼び出してください。
func (pm *PopupManager) Update() []event.PopupEvent {
	var processed []event.PopupEvent
	for len(pm.eventChannel) > 0 {
		e := <-pm.eventChannel
		processed = append(processed, e)
		if _, ok := e.(event.PopupHiddenEvent); ok {
			processed = append(processed, pm.handlePopupHidden()...)
		}
	}
	return processed
}

// IsBusy はポップアップが表示中（表示〜非表示完了の間）かどうかを返します。
func (pm *PopupManager) IsBusy() bool {
	return pm.state.Is(statePopupActive)
}

// QueueLen は表示待ちのポップアップ数を返します。
func (pm *PopupManager) QueueLen() int {
	return len(pm.queue)
}

// Default は現在のデフォルトテンプレートを返します。
func (pm *PopupManager) Default() *core.PopupData {
	return pm.defaultData
}

// SetDefault はデフォルトテンプレートを明示的に差し替えます。
// nilを渡した場合はハードコードされたフォールバックを合成します。
func (pm *PopupManager) SetDefault(d *core.PopupData) {
	if d == nil {
		d = core.NewDefaultPopupData()
		log.Println("nilのデフォルトポップアップ設定が渡されたため、ハードコードされたフォールバックを合成しました。")
	}
	pm.defaultData = d
}

// notify は通知用イベントをチャネルへ送ります。
// チャネルはマネージャ自身がUpdateで排出するため、満杯のときに
// ブロックするとUIスレッドがデッドロックします。満杯なら
// 通知を破棄してログに残します（キュー自体は失われません）。
func (pm *PopupManager) notify(e event.PopupEvent) {
	select {
	case pm.eventChannel <- e:
	default:
		log.Printf("イベントチャネルが満杯のため、通知イベント %T を破棄しました。", e)
	}
}

// buildPopupData はShowOptionsをデフォルトテンプレートとマージして
// 実効的なPopupDataを構築します。マージはここ1箇所でのみ行われます。
func (pm *PopupManager) buildPopupData(opts core.ShowOptions) *core.PopupData {
	popupData := pm.defaultData.Clone()

	// 完全に未指定のリクエストはテンプレートをそのまま表示します。
	if opts.IsZero() {
		return popupData
	}

	if opts.Title != "" {
		popupData.Title = opts.Title
	}
	if opts.Description != "" {
		popupData.Description = opts.Description
	}
	if opts.ConfirmText != "" {
		popupData.ConfirmText = opts.ConfirmText
	}

	// キャンセルボタンのポリシー:
	//   - ラベルが指定されていればそれを使う
	//   - ラベルが無くてもOnCancelがあれば、デフォルトのラベルを維持する
	//   - どちらも無ければラベルを空にし、ボタンを抑制する
	switch {
	case opts.CancelText != "":
		popupData.CancelText = opts.CancelText
	case opts.OnCancel != nil:
		// デフォルトのキャンセルラベルを維持
	default:
		popupData.CancelText = ""
	}

	if opts.OnConfirm != nil {
		popupData.OnConfirm = opts.OnConfirm
	}
	if opts.OnCancel != nil {
		popupData.OnCancel = opts.OnCancel
	}
	if opts.OnShow != nil {
		popupData.OnShow = opts.OnShow
	}
	if opts.OnHide != nil {
		popupData.OnHide = opts.OnHide
	}
	if opts.HideOnConfirm != nil {
		popupData.HideOnConfirm = *opts.HideOnConfirm
	}
	if opts.HideOnCancel != nil {
		popupData.HideOnCancel = *opts.HideOnCancel
	}

	return popupData
}

// display は状態をactiveへ遷移させ、プレゼンタへデータを渡します。
func (pm *PopupManager) display(popupData *core.PopupData) {
	if pm.presenter == nil {
		log.Printf("プレゼンタが無いためポップアップ %q を表示できません。", popupData.Title)
		return
	}
	if err := pm.state.Event(context.Background(), transitionDisplay); err != nil {
		log.Printf("ポップアップ状態の遷移に失敗しました (display): %v", err)
		return
	}
	pm.presenter.Display(popupData)
}

// handlePopupHidden は非表示完了を処理します。
// 待ち行列が空でなければ直ちに次のポップアップを表示するため、
// 外部からはアイドル状態が観測されません。
func (pm *PopupManager) handlePopupHidden() []event.PopupEvent {
	if err := pm.state.Event(context.Background(), transitionDismiss); err != nil {
		log.Printf("ポップアップ状態の遷移に失敗しました (dismiss): %v", err)
		return nil
	}

	if len(pm.queue) == 0 {
		return []event.PopupEvent{event.PopupQueueDrainedEvent{}}
	}

	next := pm.queue[0]
	pm.queue = pm.queue[1:]
	pm.display(next)
	return nil
}
