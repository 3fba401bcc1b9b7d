package event

import (
	"popup-ebiten/core"
)

// PopupEvent は、ポップアップ系コンポーネントから発行されるすべてのイベントを示すマーカーインターフェースです。
type PopupEvent interface {
	isPopupEvent()
}

// PopupShownEvent は、表示トランジションが完了したことを示すイベントです。
type PopupShownEvent struct {
	Data *core.PopupData
}

func (e PopupShownEvent) isPopupEvent() {}

// PopupHiddenEvent は、非表示トランジションが完了したことを示すイベントです。
// マネージャはこのイベントを受けてキューを前進させます。ペイロードはありません。
type PopupHiddenEvent struct{}

func (e PopupHiddenEvent) isPopupEvent() {}

// PopupConfirmedEvent は、確認ボタンがクリックされたことを示すイベントです。
type PopupConfirmedEvent struct {
	Data *core.PopupData
}

func (e PopupConfirmedEvent) isPopupEvent() {}

// PopupCanceledEvent は、キャンセルボタンがクリックされたことを示すイベントです。
type PopupCanceledEvent struct {
	Data *core.PopupData
}

func (e PopupCanceledEvent) isPopupEvent() {}

// PopupQueuedEvent は、別のポップアップ表示中にリクエストが
// 待ち行列へ追加されたことを示すイベントです。
type PopupQueuedEvent struct {
	Data        *core.PopupData
	QueueLength int
}

func (e PopupQueuedEvent) isPopupEvent() {}

// PopupQueueDrainedEvent は、最後のポップアップが閉じられ、
// 待ち行列が空になったことを示すイベントです。
type PopupQueueDrainedEvent struct{}

func (e PopupQueueDrainedEvent) isPopupEvent() {}
