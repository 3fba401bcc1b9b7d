package data

import (
	"encoding/json"
	"log"

	"popup-ebiten/core"

	resource "github.com/quasilyte/ebitengine-resource"
)

// popupDefaultsJSON は popup_defaults.json のデシリアライズ用中間構造体です。
// bool フィールドはポインタにすることで「未指定」と「false」を区別します。
type popupDefaultsJSON struct {
	Title         string `json:"Title"`
	Description   string `json:"Description"`
	ConfirmText   string `json:"ConfirmText"`
	CancelText    string `json:"CancelText"`
	HideOnConfirm *bool  `json:"HideOnConfirm"`
	HideOnCancel  *bool  `json:"HideOnCancel"`
}

// LoadPopupDefaults はデフォルトポップアップ設定をリソースから読み込みます。
// ファイルが存在しない、またはパースできない場合は、ハードコードされた
// フォールバックを合成して返します。エラーとしては扱いません。
func LoadPopupDefaults(loader *resource.Loader) *core.PopupData {
	res := loader.LoadRaw(RawPopupDefaultsJSON)
	return decodePopupDefaults(res.Data)
}

// decodePopupDefaults はJSONバイト列からデフォルトテンプレートを構築します。
// 欠落したフィールドはハードコードされたフォールバックの値が残ります。
func decodePopupDefaults(raw []byte) *core.PopupData {
	d := core.NewDefaultPopupData()
	if len(raw) == 0 {
		log.Println("デフォルトポップアップ設定が見つからないため、ハードコードされたフォールバックを合成します。")
		return d
	}

	var j popupDefaultsJSON
	if err := json.Unmarshal(raw, &j); err != nil {
		log.Printf("デフォルトポップアップ設定のパースに失敗しました: %v。フォールバックを合成します。", err)
		return core.NewDefaultPopupData()
	}

	if j.Title != "" {
		d.Title = j.Title
	}
	if j.Description != "" {
		d.Description = j.Description
	}
	if j.ConfirmText != "" {
		d.ConfirmText = j.ConfirmText
	}
	if j.CancelText != "" {
		d.CancelText = j.CancelText
	}
	if j.HideOnConfirm != nil {
		d.HideOnConfirm = *j.HideOnConfirm
	}
	if j.HideOnCancel != nil {
		d.HideOnCancel = *j.HideOnCancel
	}
	return d
}
