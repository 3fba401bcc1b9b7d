package ui

import (
	"github.com/yohamta/donburi"
)

// PopupUIState はデモシーンが参照するUI状態を保持するシングルトンコンポーネントです。
// ecs側との循環参照を避けるため、uiパッケージ内で定義します。
type PopupUIState struct {
	// ActiveTitle は表示トランジションが完了したポップアップのタイトルです。
	ActiveTitle string
	// DisplayedCount は表示が完了したポップアップの累計数です。
	DisplayedCount int
	// ConfirmedCount / CanceledCount はボタン操作の累計数です。
	ConfirmedCount int
	CanceledCount  int
}

// PopupUIStateComponent はPopupUIStateのコンポーネント型です。
var PopupUIStateComponent = donburi.NewComponentType[PopupUIState]()

// DemoTimelineEntry はデモの台本の1エントリです。
// AtTickで指定したtickに達するとRunが一度だけ実行されます。
type DemoTimelineEntry struct {
	AtTick int
	Run    func(pm *PopupManager)
}

// DemoTimeline はスクリプト化されたShow呼び出しの台本を保持します。
// エントリはAtTickの昇順で並んでいる必要があります。
type DemoTimeline struct {
	Entries   []DemoTimelineEntry
	NextIndex int
}

// DemoTimelineComponent はDemoTimelineのコンポーネント型です。
var DemoTimelineComponent = donburi.NewComponentType[DemoTimeline]()
