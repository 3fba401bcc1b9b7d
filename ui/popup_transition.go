package ui

import (
	"math"
)

// TransitionPhase はポップアップのトランジション状態を表します。
type TransitionPhase int

const (
	PhaseHidden  TransitionPhase = iota // 非表示
	PhaseShowing                        // 表示トランジション中
	PhaseShown                          // 完全表示
	PhaseHiding                         // 非表示トランジション中
)

// PopupTransition はフェード+スケールのトランジション進行を管理します。
// tick単位で進行し、表示はイーズアウト、非表示はイーズインの
// 異なるカーブを使用します。
type PopupTransition struct {
	phase    TransitionPhase
	tick     float64
	duration float64
}

// 非表示トランジション時の縮小先スケールです。
const transitionMinScale = 0.85

// NewPopupTransition は指定のトランジション長(tick数)で初期化します。
func NewPopupTransition(durationTicks float64) *PopupTransition {
	if durationTicks <= 0 {
		durationTicks = 18
	}
	return &PopupTransition{
		phase:    PhaseHidden,
		duration: durationTicks,
	}
}

// StartShow は表示トランジションを開始します。
func (t *PopupTransition) StartShow() {
	t.phase = PhaseShowing
	t.tick = 0
}

// StartHide は非表示トランジションを開始します。
// すでに非表示中/非表示であれば何もしません。
func (t *PopupTransition) StartHide() {
	if t.phase == PhaseHiding || t.phase == PhaseHidden {
		return
	}
	t.phase = PhaseHiding
	t.tick = 0
}

// Update はトランジションを1tick進め、
// このtickで表示/非表示トランジションが完了したかどうかを返します。
// 完了の通知はフェーズごとに一度だけ行われます。
func (t *PopupTransition) Update() (showFinished, hideFinished bool) {
	switch t.phase {
	case PhaseShowing:
		t.tick++
		if t.tick >= t.duration {
			t.phase = PhaseShown
			return true, false
		}
	case PhaseHiding:
		t.tick++
		if t.tick >= t.duration {
			t.phase = PhaseHidden
			return false, true
		}
	}
	return false, false
}

// Phase は現在のトランジション状態を返します。
func (t *PopupTransition) Phase() TransitionPhase {
	return t.phase
}

// progress は現在のフェーズの進行率(0〜1)を返します。
func (t *PopupTransition) progress() float64 {
	p := t.tick / t.duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Alpha は合成時の不透明度(0〜1)を返します。
func (t *PopupTransition) Alpha() float32 {
	switch t.phase {
	case PhaseShowing:
		return float32(easeOutCubic(t.progress()))
	case PhaseShown:
		return 1
	case PhaseHiding:
		return float32(1 - easeInCubic(t.progress()))
	default:
		return 0
	}
}

// Scale は合成時のスケール係数を返します。
// 表示時はわずかに行き過ぎてから収まるイーズアウトバックを使用します。
func (t *PopupTransition) Scale() float64 {
	switch t.phase {
	case PhaseShowing:
		return transitionMinScale + (1-transitionMinScale)*easeOutBack(t.progress())
	case PhaseShown:
		return 1
	case PhaseHiding:
		return 1 - (1-transitionMinScale)*easeInCubic(t.progress())
	default:
		return transitionMinScale
	}
}

// easeOutCubic は終端で減速する補間カーブです。
func easeOutCubic(p float64) float64 {
	return 1 - math.Pow(1-p, 3)
}

// easeInCubic は始端で加速する補間カーブです。
func easeInCubic(p float64) float64 {
	return p * p * p
}

// easeOutBack は目標値をわずかに超えてから戻る補間カーブです。
func easeOutBack(p float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return 1 + c3*math.Pow(p-1, 3) + c1*math.Pow(p-1, 2)
}
