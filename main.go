package main

import (
	"errors"
	"log"

	"popup-ebiten/data"
	"popup-ebiten/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

func main() {
	assetPaths := data.DefaultAssetPaths()

	audioContext := audio.NewContext(44100)
	loader := data.NewLoader(audioContext, assetPaths)

	config := data.LoadConfig(loader, assetPaths)

	fonts, err := data.LoadFonts(&config)
	if err != nil {
		log.Fatalf("フォントのロードに失敗しました: %v", err)
	}

	popupDefaults := data.LoadPopupDefaults(loader)

	resources := data.NewSharedResources(config, fonts, popupDefaults, loader)

	manager := ui.NewSceneManager(resources)

	ebiten.SetWindowSize(config.UI.Screen.Width, config.UI.Screen.Height)
	ebiten.SetWindowTitle("Popup Queue Demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(manager.Sequence); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("ゲームの実行中にエラーが発生しました: %v", err)
	}
}
