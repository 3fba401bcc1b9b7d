package data

import (
	resource "github.com/quasilyte/ebitengine-resource"
)

// Rawリソースの識別子です。
const (
	RawNone resource.RawID = iota
	RawSettingsJSON
	RawPopupDefaultsJSON
)
