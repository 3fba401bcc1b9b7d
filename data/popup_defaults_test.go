package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePopupDefaultsEmpty(t *testing.T) {
	d := decodePopupDefaults(nil)

	require.NotNil(t, d)
	assert.Equal(t, "Alert", d.Title)
	assert.Equal(t, "OK", d.ConfirmText)
	assert.True(t, d.HideOnConfirm)
}

func TestDecodePopupDefaultsPartialMerge(t *testing.T) {
	raw := []byte(`{"Title": "Notice", "HideOnConfirm": false}`)
	d := decodePopupDefaults(raw)

	// 指定されたフィールドのみ上書きされる
	assert.Equal(t, "Notice", d.Title)
	assert.False(t, d.HideOnConfirm)
	// 未指定のフィールドはフォールバックの値が残る
	assert.Equal(t, "Something happened", d.Description)
	assert.Equal(t, "Cancel", d.CancelText)
	assert.True(t, d.HideOnCancel)
}

func TestDecodePopupDefaultsInvalidJSON(t *testing.T) {
	d := decodePopupDefaults([]byte(`{broken`))

	require.NotNil(t, d)
	assert.Equal(t, "Alert", d.Title)
	assert.Equal(t, "Cancel", d.CancelText)
}
