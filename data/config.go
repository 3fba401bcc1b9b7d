package data

import (
	"encoding/json"
	"fmt"
	"image/color"
	"log"
)

// Configは、アプリケーション全体のコンフィグレーションを保持します。
// settings.jsonから直接デシリアライズされる部分と、
// コード内で後から設定される部分（AssetPaths）で構成されます。
type Config struct {
	// UI設定はUIConfig構造体にマッピングされます。
	UI UIConfig `json:"UI"`

	// --- Non-JSON fields ---
	// 以下のフィールドはJSONファイルからロードされず、コード内で設定されます。
	AssetPaths AssetPaths
}

// AssetPaths は各種アセットへのパスを保持します。
type AssetPaths struct {
	Settings      string
	PopupDefaults string
}

// DefaultAssetPaths はアセットパスの既定値を返します。
func DefaultAssetPaths() AssetPaths {
	return AssetPaths{
		Settings:      "assets/configs/settings.json",
		PopupDefaults: "assets/configs/popup_defaults.json",
	}
}

// UIConfig は settings.json の "UI" セクションとマッピングされます。
// 色設定はstringで受け取り、後から color.Color に変換されます。
type UIConfig struct {
	Screen struct {
		Width  int `json:"Width"`
		Height int `json:"Height"`
	} `json:"Screen"`
	Popup struct {
		WindowWidth     int     `json:"WindowWidth"`
		Padding         int     `json:"Padding"`
		Spacing         int     `json:"Spacing"`
		ButtonSpacing   int     `json:"ButtonSpacing"`
		BorderThickness float32 `json:"BorderThickness"`
		// TransitionTicks はフェード+スケールのトランジション長（tick数）です。
		// 60TPSで18tick ≒ 0.3秒。
		TransitionTicks float64 `json:"TransitionTicks"`
		TitleFontSize   float64 `json:"TitleFontSize"`
		BodyFontSize    float64 `json:"BodyFontSize"`
		ButtonFontSize  float64 `json:"ButtonFontSize"`
	} `json:"Popup"`

	// ColorsフィールドはJSONから直接デシリアライズされる際に、
	// 下記で定義されたカスタムのUnmarshalJSONメソッドによってパースされます。
	Colors ParsedColors `json:"Colors"`
}

// ParsedColors はパース済みの色情報を保持します。
type ParsedColors struct {
	White      color.Color
	Gray       color.Color
	Black      color.Color
	Accent     color.Color
	Background color.Color
	Overlay    color.Color
}

// UnmarshalJSON は ParsedColors 型のカスタムデシリアライザです。
// JSONの "Colors" オブジェクト（キーが色名、値が16進数文字列のマップ）を
// ParsedColors 構造体の各 color.Color フィールドに変換します。
func (p *ParsedColors) UnmarshalJSON(data []byte) error {
	var raw struct {
		White      string `json:"White"`
		Gray       string `json:"Gray"`
		Black      string `json:"Black"`
		Accent     string `json:"Accent"`
		Background string `json:"Background"`
		Overlay    string `json:"Overlay"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("色データのJSONアンマーシャルに失敗しました: %w", err)
	}

	p.White = parseHexColor(raw.White)
	p.Gray = parseHexColor(raw.Gray)
	p.Black = parseHexColor(raw.Black)
	p.Accent = parseHexColor(raw.Accent)
	p.Background = parseHexColor(raw.Background)
	p.Overlay = parseHexColor(raw.Overlay)

	return nil
}

// parseHexColor は16進数文字列からcolor.Colorをパースします。
// "RRGGBB" または "RRGGBBAA" を受け付けます。
func parseHexColor(s string) color.Color {
	var r, g, b, a uint8
	a = 255
	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			log.Printf("16進数カラーコード '%s' のパースに失敗しました: %v", s, err)
			return color.White
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			log.Printf("16進数カラーコード '%s' のパースに失敗しました: %v", s, err)
			return color.White
		}
	default:
		log.Printf("無効な16進数カラーコードです: %s。デフォルト色を使用します。", s)
		return color.White
	}
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// DefaultConfig は設定ファイルが利用できない場合に使用する
// 組み込みのデフォルト設定を返します。
func DefaultConfig() Config {
	var cfg Config
	cfg.UI.Screen.Width = 960
	cfg.UI.Screen.Height = 540
	cfg.UI.Popup.WindowWidth = 420
	cfg.UI.Popup.Padding = 15
	cfg.UI.Popup.Spacing = 10
	cfg.UI.Popup.ButtonSpacing = 20
	cfg.UI.Popup.BorderThickness = 2
	cfg.UI.Popup.TransitionTicks = 18
	cfg.UI.Popup.TitleFontSize = 18
	cfg.UI.Popup.BodyFontSize = 14
	cfg.UI.Popup.ButtonFontSize = 14
	cfg.UI.Colors = ParsedColors{
		White:      color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
		Gray:       color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		Black:      color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff},
		Accent:     color.RGBA{R: 0x00, G: 0xbf, B: 0xff, A: 0xff},
		Background: color.RGBA{R: 0x14, G: 0x14, B: 0x1e, A: 0xff},
		Overlay:    color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xb4},
	}
	return cfg
}
