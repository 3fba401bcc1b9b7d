package core

// PopupPresenter defines the interface for the popup rendering component.
// This keeps the manager decoupled from the concrete ebitenui widget tree
// and allows it to be replaced with a fake in tests.
type PopupPresenter interface {
	// Display はPopupDataをウィジェットに束縛し、表示トランジションを開始します。
	Display(data *PopupData)
	// ForceHide は確認/キャンセルのクリックを経由せずに
	// 非表示トランジションを直ちに開始します。
	ForceHide()
	// IsVisible はポップアップが画面上にある（トランジション中を含む）
	// かどうかを返します。
	IsVisible() bool
}
