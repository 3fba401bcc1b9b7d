package ui

import (
	"testing"

	"popup-ebiten/core"
	"popup-ebiten/data"
	"popup-ebiten/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePresenter はトランジションを持たないcore.PopupPresenterの実装です。
// ForceHideは非表示完了イベントを即座にチャネルへ送ります。
type fakePresenter struct {
	displayed []*core.PopupData
	hideCalls int
	visible   bool
	ch        chan event.PopupEvent
}

func (p *fakePresenter) Display(d *core.PopupData) {
	p.displayed = append(p.displayed, d)
	p.visible = true
}

func (p *fakePresenter) ForceHide() {
	p.hideCalls++
	if !p.visible {
		return
	}
	p.visible = false
	p.ch <- event.PopupHiddenEvent{}
}

func (p *fakePresenter) IsVisible() bool {
	return p.visible
}

func newTestManager(t *testing.T) (*PopupManager, *fakePresenter) {
	t.Helper()
	ch := make(chan event.PopupEvent, 10)
	presenter := &fakePresenter{ch: ch}
	config := data.DefaultConfig()
	pm := NewPopupManager(&config, presenter, core.NewDefaultPopupData(), ch)
	return pm, presenter
}

func TestShowDisplaysImmediatelyWhenIdle(t *testing.T) {
	pm, presenter := newTestManager(t)

	assert.False(t, pm.IsBusy())
	pm.ShowMessage("Hello")

	// アイドル時のShowは呼び出し中に表示まで到達する
	require.Len(t, presenter.displayed, 1)
	assert.Equal(t, "Hello", presenter.displayed[0].Title)
	assert.True(t, pm.IsBusy())
	assert.Equal(t, 0, pm.QueueLen())
}

func TestShowQueuesWhileBusyAndDrainsFIFO(t *testing.T) {
	pm, presenter := newTestManager(t)

	pm.ShowMessage("A")
	pm.ShowMessage("B")
	pm.ShowMessage("C")

	// Aが表示中、BとCは待ち行列
	require.Len(t, presenter.displayed, 1)
	assert.Equal(t, 2, pm.QueueLen())
	assert.True(t, pm.IsBusy())

	// Aを閉じるとBが即座に表示される
	pm.Hide()
	pm.Update()
	require.Len(t, presenter.displayed, 2)
	assert.Equal(t, "B", presenter.displayed[1].Title)
	assert.Equal(t, 1, pm.QueueLen())
	assert.True(t, pm.IsBusy())

	// Bを閉じるとCが表示される
	pm.Hide()
	pm.Update()
	require.Len(t, presenter.displayed, 3)
	assert.Equal(t, "C", presenter.displayed[2].Title)
	assert.Equal(t, 0, pm.QueueLen())

	// Cを閉じると待ち行列が空になり、アイドルへ戻る
	pm.Hide()
	events := pm.Update()
	assert.False(t, pm.IsBusy())

	drained := false
	for _, e := range events {
		if _, ok := e.(event.PopupQueueDrainedEvent); ok {
			drained = true
		}
	}
	assert.True(t, drained)
}

func TestShowQueuedEventCarriesQueueLength(t *testing.T) {
	pm, _ := newTestManager(t)

	pm.ShowMessage("A")
	pm.ShowMessage("B")
	events := pm.Update()

	require.Len(t, events, 1)
	queued, ok := events[0].(event.PopupQueuedEvent)
	require.True(t, ok)
	assert.Equal(t, "B", queued.Data.Title)
	assert.Equal(t, 1, queued.QueueLength)
}

func TestShowZeroOptionsUsesTemplateUnchanged(t *testing.T) {
	pm, presenter := newTestManager(t)

	pm.Show(core.ShowOptions{})

	require.Len(t, presenter.displayed, 1)
	shown := presenter.displayed[0]
	assert.Equal(t, "Alert", shown.Title)
	assert.Equal(t, "Something happened", shown.Description)
	assert.Equal(t, "OK", shown.ConfirmText)
	// 完全未指定の場合、キャンセルボタンは抑制されない
	assert.Equal(t, "Cancel", shown.CancelText)
	assert.True(t, shown.HideOnConfirm)
}

func TestShowDoesNotMutateDefaultTemplate(t *testing.T) {
	pm, _ := newTestManager(t)

	pm.Show(core.ShowOptions{Title: "Custom", CancelText: "No"})

	d := pm.Default()
	assert.Equal(t, "Alert", d.Title)
	assert.Equal(t, "Cancel", d.CancelText)
}

func TestCancelSuppressedWhenNotRequested(t *testing.T) {
	pm, presenter := newTestManager(t)

	// タイトルだけ指定した場合、キャンセルボタンは出ない
	pm.Show(core.ShowOptions{Title: "Info"})

	require.Len(t, presenter.displayed, 1)
	shown := presenter.displayed[0]
	assert.Equal(t, "Info", shown.Title)
	assert.Empty(t, shown.CancelText)
	assert.False(t, shown.HasCancel())
}

func TestCancelLabelRetainedWhenOnlyCallbackGiven(t *testing.T) {
	pm, presenter := newTestManager(t)

	pm.Show(core.ShowOptions{
		Title:    "Confirm?",
		OnCancel: func() {},
	})

	require.Len(t, presenter.displayed, 1)
	shown := presenter.displayed[0]
	// ラベル未指定でもOnCancelがあればデフォルトのラベルを引き継ぐ
	assert.Equal(t, "Cancel", shown.CancelText)
	assert.NotNil(t, shown.OnCancel)
}

func TestCancelLabelOverride(t *testing.T) {
	pm, presenter := newTestManager(t)

	pm.Show(core.ShowOptions{Title: "Confirm?", CancelText: "No"})

	require.Len(t, presenter.displayed, 1)
	assert.Equal(t, "No", presenter.displayed[0].CancelText)
}

func TestHideFlagOverride(t *testing.T) {
	pm, presenter := newTestManager(t)

	f := false
	pm.Show(core.ShowOptions{Title: "Sticky", HideOnConfirm: &f})

	require.Len(t, presenter.displayed, 1)
	assert.False(t, presenter.displayed[0].HideOnConfirm)
	// 未指定のフラグはテンプレートの値を引き継ぐ
	assert.True(t, presenter.displayed[0].HideOnCancel)
}

func TestHideIsNoOpWhenIdle(t *testing.T) {
	pm, presenter := newTestManager(t)

	pm.Hide()
	assert.Equal(t, 0, presenter.hideCalls)
	assert.False(t, pm.IsBusy())
}

func TestConvenienceHelpers(t *testing.T) {
	pm, presenter := newTestManager(t)

	confirmed := false
	pm.ShowConfirm("Proceed?", "Really?", func() { confirmed = true })

	require.Len(t, presenter.displayed, 1)
	shown := presenter.displayed[0]
	assert.Equal(t, "Proceed?", shown.Title)
	assert.Equal(t, "Really?", shown.Description)
	require.NotNil(t, shown.OnConfirm)
	shown.OnConfirm()
	assert.True(t, confirmed)

	pm.ShowMessageWith("Title", "Body")
	assert.Equal(t, 1, pm.QueueLen())
}

func TestShowBurstBeyondChannelCapacityDoesNotBlock(t *testing.T) {
	pm, presenter := newTestManager(t)

	// チャネル容量(10)を超える連続Show。通知イベントは破棄されても、
	// Show自体はブロックせず、キューは全件保持される。
	pm.ShowMessage("Visible")
	const burst = 15
	for i := 0; i < burst; i++ {
		pm.ShowMessage("Queued")
	}

	require.Len(t, presenter.displayed, 1)
	assert.Equal(t, burst, pm.QueueLen())

	// 滞留した通知イベントを排出してから閉じ始める
	pm.Update()

	// 破棄されたのは通知だけで、待ち行列の排出は全件行われる
	for i := 0; i < burst; i++ {
		pm.Hide()
		pm.Update()
	}
	assert.Equal(t, 0, pm.QueueLen())
	assert.Len(t, presenter.displayed, 1+burst)
	assert.True(t, pm.IsBusy())
}

func TestNilEventChannelIsSynthesized(t *testing.T) {
	config := data.DefaultConfig()
	presenter := &fakePresenter{}
	pm := NewPopupManager(&config, presenter, nil, nil)

	assert.NotPanics(t, func() {
		pm.ShowMessage("A")
		pm.ShowMessage("B")
		pm.Update()
	})
	require.Len(t, presenter.displayed, 1)
	assert.Equal(t, 1, pm.QueueLen())
}

func TestNilDefaultIsSynthesized(t *testing.T) {
	ch := make(chan event.PopupEvent, 10)
	presenter := &fakePresenter{ch: ch}
	config := data.DefaultConfig()

	pm := NewPopupManager(&config, presenter, nil, ch)

	require.NotNil(t, pm.Default())
	assert.Equal(t, "Alert", pm.Default().Title)
}

func TestSetDefault(t *testing.T) {
	pm, presenter := newTestManager(t)

	pm.SetDefault(&core.PopupData{
		Title:       "Custom Default",
		ConfirmText: "Yes",
	})
	pm.Show(core.ShowOptions{})

	require.Len(t, presenter.displayed, 1)
	assert.Equal(t, "Custom Default", presenter.displayed[0].Title)

	// nilを渡すとフォールバックが合成される
	pm.SetDefault(nil)
	require.NotNil(t, pm.Default())
	assert.Equal(t, "Alert", pm.Default().Title)
}

func TestNilPresenterDoesNotPanic(t *testing.T) {
	ch := make(chan event.PopupEvent, 10)
	config := data.DefaultConfig()
	pm := NewPopupManager(&config, nil, nil, ch)

	assert.NotPanics(t, func() {
		pm.ShowMessage("Nobody sees this")
		pm.Hide()
		pm.Update()
	})
	assert.False(t, pm.IsBusy())
}
