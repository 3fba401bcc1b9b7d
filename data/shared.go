package data

import (
	"popup-ebiten/core"

	resource "github.com/quasilyte/ebitengine-resource"
)

// SharedResources はアプリケーション全体で共有されるリソースを保持します。
type SharedResources struct {
	Config        Config
	Fonts         *Fonts
	PopupDefaults *core.PopupData
	Loader        *resource.Loader
}

// NewSharedResources はSharedResourcesを初期化して返します。
func NewSharedResources(
	config Config,
	fonts *Fonts,
	popupDefaults *core.PopupData,
	loader *resource.Loader,
) *SharedResources {
	return &SharedResources{
		Config:        config,
		Fonts:         fonts,
		PopupDefaults: popupDefaults,
		Loader:        loader,
	}
}
