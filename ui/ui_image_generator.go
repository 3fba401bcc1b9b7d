package ui

import (
	"image/color"
	"math"

	"popup-ebiten/data"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// UIImageGenerator はUIコンポーネントの画像生成ロジックをカプセル化します。
type UIImageGenerator struct {
	config *data.Config
}

// NewUIImageGenerator は新しいUIImageGeneratorのインスタンスを作成します。
func NewUIImageGenerator(config *data.Config) *UIImageGenerator {
	return &UIImageGenerator{
		config: config,
	}
}

// createPopupButtonImageSet は、ポップアップボタン用の画像セットを生成します。
func (g *UIImageGenerator) createPopupButtonImageSet(thickness float32) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    g.createBeveledNineSlice(color.RGBA{R: 40, G: 50, B: 80, A: 255}, color.RGBA{R: 25, G: 32, B: 55, A: 255}, g.config.UI.Colors.Accent, thickness),
		Hover:   g.createBeveledNineSlice(color.RGBA{R: 60, G: 75, B: 115, A: 255}, color.RGBA{R: 40, G: 52, B: 85, A: 255}, g.config.UI.Colors.White, thickness),
		Pressed: g.createBeveledNineSlice(color.RGBA{R: 25, G: 32, B: 55, A: 255}, color.RGBA{R: 40, G: 50, B: 80, A: 255}, g.config.UI.Colors.Accent, thickness),
	}
}

// createPopupPanelNineSlice は、ポップアップ本体のパネル用NineSlice画像を生成します。
// グラデーション背景と立体的な枠線が特徴です。
func (g *UIImageGenerator) createPopupPanelNineSlice(thickness float32) *image.NineSlice {
	startColor := color.RGBA{R: 18, G: 22, B: 38, A: 255}
	endColor := color.RGBA{R: 32, G: 40, B: 66, A: 255}
	return g.createBeveledNineSlice(startColor, endColor, g.config.UI.Colors.Accent, thickness)
}

// createBeveledNineSlice は、グラデーション背景に枠線のハイライトと
// シャドウを付けたNineSlice画像を生成します。
func (g *UIImageGenerator) createBeveledNineSlice(startColor, endColor, borderColor color.Color, thickness float32) *image.NineSlice {
	tileSize := 64
	borderInset := int(thickness)
	if borderInset < 1 {
		borderInset = 1
	}

	img := ebiten.NewImage(tileSize, tileSize)
	g.drawGradient(img, startColor, endColor)

	highlightColor, shadowColor := g.createHighlightAndShadowColors(borderColor)

	// 上辺と左辺にハイライト
	vector.StrokeLine(img, 0, 0, float32(tileSize), 0, thickness, highlightColor, false)
	vector.StrokeLine(img, 0, 0, 0, float32(tileSize), thickness, highlightColor, false)

	// 下辺と右辺にシャドウ
	vector.StrokeLine(img, 0, float32(tileSize), float32(tileSize), float32(tileSize), thickness, shadowColor, false)
	vector.StrokeLine(img, float32(tileSize), 0, float32(tileSize), float32(tileSize), thickness, shadowColor, false)

	return image.NewNineSlice(img,
		[3]int{borderInset, tileSize - 2*borderInset, borderInset},
		[3]int{borderInset, tileSize - 2*borderInset, borderInset})
}

// drawGradient は、指定された画像に縦方向の線形グラデーションを描画します。
func (g *UIImageGenerator) drawGradient(img *ebiten.Image, startColor, endColor color.Color) {
	size := img.Bounds().Size()
	sr, sg, sb, sa := startColor.RGBA()
	er, eg, eb, ea := endColor.RGBA()

	for y := 0; y < size.Y; y++ {
		ratio := float64(y) / float64(size.Y-1)
		r := g.lerp(float64(sr), float64(er), ratio)
		cg := g.lerp(float64(sg), float64(eg), ratio)
		b := g.lerp(float64(sb), float64(eb), ratio)
		a := g.lerp(float64(sa), float64(ea), ratio)
		rowColor := color.RGBA64{uint16(r), uint16(cg), uint16(b), uint16(a)}
		for x := 0; x < size.X; x++ {
			img.Set(x, y, rowColor)
		}
	}
}

// lerp は線形補間を行います。
func (g *UIImageGenerator) lerp(start, end, ratio float64) float64 {
	return start*(1-ratio) + end*ratio
}

// createHighlightAndShadowColors は、ベースカラーから明るい色と暗い色を生成します。
func (g *UIImageGenerator) createHighlightAndShadowColors(baseColor color.Color) (highlight color.Color, shadow color.Color) {
	r, gVal, b, a := baseColor.RGBA()

	hr := uint16(math.Min(0xffff, float64(r)*1.5))
	hg := uint16(math.Min(0xffff, float64(gVal)*1.5))
	hb := uint16(math.Min(0xffff, float64(b)*1.5))
	highlight = color.RGBA64{hr, hg, hb, uint16(a)}

	sr := uint16(float64(r) * 0.5)
	sg := uint16(float64(gVal) * 0.5)
	sb := uint16(float64(b) * 0.5)
	shadow = color.RGBA64{sr, sg, sb, uint16(a)}

	return highlight, shadow
}
