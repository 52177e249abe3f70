package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace — растровый шрифт, не требующий файлов с диска.
var DefaultFace font.Face = basicfont.Face7x13

// drawCentered рисует строку с центром по X в точке x; y — базовая линия.
func drawCentered(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, x-bounds.Dx()/2, y, clr)
}

// drawOutlined рисует текст с обводкой толщиной thickness пикселей.
func drawOutlined(screen *ebiten.Image, s string, face font.Face, x, y, thickness int, fill, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, face, x+dx, y+dy, outline)
		}
	}
	text.Draw(screen, s, face, x, y, fill)
}
