package data

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	resource "github.com/quasilyte/ebitengine-resource"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// NewLoader はリソースローダーを初期化してそのインスタンスを返します。
// 生成したローダーを返すことで、依存関係を明確にします。
func NewLoader(audioContext *audio.Context, assetPaths AssetPaths) *resource.Loader {
	loader := resource.NewLoader(audioContext)

	// アセットが見つからない場合でもパニックせず、空のデータを返します。
	// 欠落は各ロード関数側で組み込みデフォルトにフォールバックします。
	loader.OpenAssetFunc = func(path string) io.ReadCloser {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("アセット %s を開けませんでした: %v。組み込みデフォルトにフォールバックします。", path, err)
			return io.NopCloser(bytes.NewReader(nil))
		}
		return io.NopCloser(bytes.NewReader(data))
	}

	// Rawリソース（JSON設定ファイル）を登録します。
	rawResources := map[resource.RawID]resource.RawInfo{
		RawSettingsJSON:      {Path: assetPaths.Settings},
		RawPopupDefaultsJSON: {Path: assetPaths.PopupDefaults},
	}
	loader.RawRegistry.Assign(rawResources)

	return loader
}

// Fonts はUIの各所で使用するフォントフェイスを保持します。
type Fonts struct {
	Title  text.Face // ポップアップのタイトル用
	Body   text.Face // 本文・通常テキスト用
	Button text.Face // ボタンラベル用
}

// LoadFonts は設定されたサイズでフォントフェイスを構築します。
// フォントファイルのアセットは同梱しないため、Goの標準フォントを使用します。
func LoadFonts(config *Config) (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("フォントのパースに失敗しました: %w", err)
	}

	newFace := func(size float64) (text.Face, error) {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("フォントフェイスの生成に失敗しました (size=%v): %w", size, err)
		}
		return text.NewGoXFace(face), nil
	}

	titleFace, err := newFace(config.UI.Popup.TitleFontSize)
	if err != nil {
		return nil, err
	}
	bodyFace, err := newFace(config.UI.Popup.BodyFontSize)
	if err != nil {
		return nil, err
	}
	buttonFace, err := newFace(config.UI.Popup.ButtonFontSize)
	if err != nil {
		return nil, err
	}

	return &Fonts{
		Title:  titleFace,
		Body:   bodyFace,
		Button: buttonFace,
	}, nil
}
