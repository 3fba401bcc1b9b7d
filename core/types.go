package core

// PopupCallback はポップアップのライフサイクルで呼び出されるコールバックの型です。
// nil の場合は何も実行されません（安全なno-op）。
type PopupCallback func()

// PopupData は1つのポップアップの表示内容を保持する値オブジェクトです。
// フィールド以外のアイデンティティを持ちません。
type PopupData struct {
	Title       string
	Description string

	// ConfirmText は確認ボタンのラベルです。
	ConfirmText string
	// CancelText はキャンセルボタンのラベルです。
	// 空文字列の場合、キャンセルボタン自体が表示されません。
	CancelText string

	// ライフサイクルコールバック。いずれも省略可能です。
	OnConfirm PopupCallback
	OnCancel  PopupCallback
	OnShow    PopupCallback
	OnHide    PopupCallback

	// HideOnConfirm / HideOnCancel は、ボタンクリックが自動的に
	// 非表示トランジションを開始するかどうかを制御します。
	HideOnConfirm bool
	HideOnCancel  bool
}

// Clone はPopupDataの複製を返します。
// 複製後に一方のフィールドを変更しても、もう一方には影響しません。
// コールバックは不変な関数ハンドルなので、参照コピーで問題ありません。
func (d *PopupData) Clone() *PopupData {
	c := *d
	return &c
}

// HasCancel はキャンセルボタンを表示すべきかどうかを返します。
func (d *PopupData) HasCancel() bool {
	return d.CancelText != ""
}

// NewDefaultPopupData は、デフォルト設定が存在しない場合に合成される
// ハードコードされたフォールバックのテンプレートを返します。
func NewDefaultPopupData() *PopupData {
	return &PopupData{
		Title:         "Alert",
		Description:   "Something happened",
		ConfirmText:   "OK",
		CancelText:    "Cancel",
		HideOnConfirm: true,
		HideOnCancel:  true,
	}
}

// ShowOptions はPopupManager.Showへ渡す表示リクエストです。
// すべてのフィールドが省略可能で、未指定のフィールドは
// デフォルトテンプレートの値が使われます。
// 文字列はゼロ値（空文字列）が「未指定」を意味します。
type ShowOptions struct {
	Title       string
	Description string
	ConfirmText string
	CancelText  string

	OnConfirm PopupCallback
	OnCancel  PopupCallback
	OnShow    PopupCallback
	OnHide    PopupCallback

	// nil の場合はテンプレートの値を引き継ぎます。
	HideOnConfirm *bool
	HideOnCancel  *bool
}

// IsZero はすべてのフィールドが未指定かどうかを返します。
// 未指定のリクエストはテンプレートをそのまま表示します。
func (o ShowOptions) IsZero() bool {
	return o.Title == "" &&
		o.Description == "" &&
		o.ConfirmText == "" &&
		o.CancelText == "" &&
		o.OnConfirm == nil &&
		o.OnCancel == nil &&
		o.OnShow == nil &&
		o.OnHide == nil &&
		o.HideOnConfirm == nil &&
		o.HideOnCancel == nil
}
