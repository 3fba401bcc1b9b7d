package data

import (
	"encoding/json"
	"log"

	resource "github.com/quasilyte/ebitengine-resource"
)

// LoadConfig は設定リソースを読み込み、初期化済みのConfig構造体を返します。
// 設定ファイルが存在しない、またはパースできない場合はエラーにせず、
// 組み込みのデフォルト設定で修復します（診断ログのみ出力）。
func LoadConfig(loader *resource.Loader, assetPaths AssetPaths) Config {
	res := loader.LoadRaw(RawSettingsJSON)
	if len(res.Data) == 0 {
		log.Printf("設定ファイル %s が読み込めないため、組み込みデフォルト設定を使用します。", assetPaths.Settings)
		cfg := DefaultConfig()
		cfg.AssetPaths = assetPaths
		return cfg
	}

	// デフォルト値の上にアンマーシャルすることで、JSONに無いキーは
	// 組み込みデフォルトのまま残ります。
	cfg := DefaultConfig()
	if err := json.Unmarshal(res.Data, &cfg); err != nil {
		log.Printf("設定ファイル %s のパースに失敗しました: %v。組み込みデフォルト設定を使用します。", assetPaths.Settings, err)
		cfg = DefaultConfig()
	}

	cfg.AssetPaths = assetPaths
	return cfg
}
