// Package canvas draws a game with ebiten and maps ebiten key state to
// engine commands.
package canvas

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/render"
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	BorderColor     = color.RGBA{128, 128, 128, 255}
	LockedColor     = color.RGBA{255, 255, 0, 255}
	ActiveColor     = color.RGBA{255, 0, 0, 255}
	BannerColor     = color.RGBA{0, 0, 0, 200}
)

const panelGap = 20

// Renderer draws a render.View with its grid's top-left corner at
// (OffsetX, OffsetY) and the score panel to the right of it. A zero Block
// uses render.BlockSize.
type Renderer struct {
	OffsetX float32
	OffsetY float32
	Block   int
}

func (r *Renderer) gridSize() (block, width, height int) {
	block = r.Block
	if block <= 0 {
		block = render.BlockSize
	}
	return block, board.Cols * block, board.Rows * block
}

// Size returns the screen area the renderer needs.
func (r *Renderer) Size() (width, height int) {
	_, w, h := r.gridSize()
	return int(r.OffsetX)*2 + w + panelGap + 120, int(r.OffsetY)*2 + h
}

func (r *Renderer) Draw(screen *ebiten.Image, v render.View) {
	screen.Fill(BackgroundColor)

	size, w, h := r.gridSize()
	block := float32(size)

	vector.StrokeRect(screen, r.OffsetX-2, r.OffsetY-2, float32(w)+4, float32(h)+4, 1, BorderColor, false)

	for row := range board.Rows {
		for col := range board.Cols {
			var c color.Color
			switch v.Cells[row][col] {
			case render.Locked:
				c = LockedColor
			case render.Active:
				c = ActiveColor
			default:
				continue
			}

			x := r.OffsetX + float32(col)*block
			y := r.OffsetY + float32(row)*block
			vector.DrawFilledRect(screen, x, y, block, block, c, false)
			vector.StrokeRect(screen, x, y, block, block, 1, BackgroundColor, false)
		}
	}

	textX := int(r.OffsetX) + w + panelGap
	textY := int(r.OffsetY)
	ebitenutil.DebugPrintAt(screen, v.ScoreText(), textX, textY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines: %d", v.Lines), textX, textY+20)
	ebitenutil.DebugPrintAt(screen, "[Space] "+v.ButtonLabel(), textX, textY+50)

	if banner := v.Banner(); banner != "" {
		bannerY := r.OffsetY + float32(h)/2 - 20
		vector.DrawFilledRect(screen, r.OffsetX, bannerY, float32(w), 40, BannerColor, false)
		ebitenutil.DebugPrintAt(screen, banner, int(r.OffsetX)+w/2-len(banner)*3, int(bannerY)+12)
	}
}
