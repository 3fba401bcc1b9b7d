package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionPhaseProgression(t *testing.T) {
	tr := NewPopupTransition(3)
	assert.Equal(t, PhaseHidden, tr.Phase())

	tr.StartShow()
	assert.Equal(t, PhaseShowing, tr.Phase())

	// 3tickで完全表示へ到達する
	var showFinished bool
	for i := 0; i < 3; i++ {
		showFinished, _ = tr.Update()
	}
	assert.True(t, showFinished)
	assert.Equal(t, PhaseShown, tr.Phase())

	tr.StartHide()
	assert.Equal(t, PhaseHiding, tr.Phase())

	var hideFinished bool
	for i := 0; i < 3; i++ {
		_, hideFinished = tr.Update()
	}
	assert.True(t, hideFinished)
	assert.Equal(t, PhaseHidden, tr.Phase())
}

func TestTransitionCompletionFiresOnce(t *testing.T) {
	tr := NewPopupTransition(2)
	tr.StartShow()

	tr.Update()
	showFinished, _ := tr.Update()
	require.True(t, showFinished)

	// 完了後のUpdateは再通知しない
	showFinished, hideFinished := tr.Update()
	assert.False(t, showFinished)
	assert.False(t, hideFinished)
}

func TestTransitionStartHideIgnoredWhenHidden(t *testing.T) {
	tr := NewPopupTransition(3)

	tr.StartHide()
	assert.Equal(t, PhaseHidden, tr.Phase())

	tr.StartShow()
	tr.Update()
	tr.StartHide()
	tickBefore := tr.tick
	// 二重開始でtickがリセットされない
	tr.StartHide()
	assert.Equal(t, tickBefore, tr.tick)
	assert.Equal(t, PhaseHiding, tr.Phase())
}

func TestTransitionAlphaBounds(t *testing.T) {
	tr := NewPopupTransition(10)
	assert.Equal(t, float32(0), tr.Alpha())

	tr.StartShow()
	prev := float32(0)
	for i := 0; i < 10; i++ {
		tr.Update()
		a := tr.Alpha()
		assert.GreaterOrEqual(t, a, prev)
		assert.LessOrEqual(t, a, float32(1))
		prev = a
	}
	assert.Equal(t, float32(1), tr.Alpha())

	tr.StartHide()
	for i := 0; i < 10; i++ {
		tr.Update()
		a := tr.Alpha()
		assert.GreaterOrEqual(t, a, float32(0))
		assert.LessOrEqual(t, a, float32(1))
	}
	assert.Equal(t, float32(0), tr.Alpha())
}

func TestTransitionScale(t *testing.T) {
	tr := NewPopupTransition(10)
	assert.Equal(t, transitionMinScale, tr.Scale())

	tr.StartShow()
	for i := 0; i < 10; i++ {
		tr.Update()
		// イーズアウトバックはわずかに1を超えることがある
		assert.Greater(t, tr.Scale(), transitionMinScale)
	}
	assert.Equal(t, 1.0, tr.Scale())

	tr.StartHide()
	for i := 0; i < 10; i++ {
		tr.Update()
		assert.LessOrEqual(t, tr.Scale(), 1.0)
	}
	assert.Equal(t, transitionMinScale, tr.Scale())
}

func TestEasingEndpoints(t *testing.T) {
	assert.InDelta(t, 0, easeOutCubic(0), 1e-9)
	assert.InDelta(t, 1, easeOutCubic(1), 1e-9)
	assert.InDelta(t, 0, easeInCubic(0), 1e-9)
	assert.InDelta(t, 1, easeInCubic(1), 1e-9)
	assert.InDelta(t, 0, easeOutBack(0), 1e-9)
	assert.InDelta(t, 1, easeOutBack(1), 1e-9)
}

func TestTransitionZeroDurationFallsBack(t *testing.T) {
	tr := NewPopupTransition(0)
	assert.Equal(t, 18.0, tr.duration)
}
