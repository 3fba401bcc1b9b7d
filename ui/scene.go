package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene はシーンシーケンスへ登録できる1画面分の単位です。
// ebiten.Gameと同一のUpdate/Draw/Layoutを実装していれば、
// タイトルやデモなどどの画面もシーンとして差し替えられます。
type Scene interface {
	ebiten.Game
}
