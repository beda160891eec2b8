package gui

import (
	"errors"
	"image/color"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/lawn-defense/internal/games/lawn/sim"
)

// Sprite names besides the plant kinds.
const (
	spriteZombie = "zombie"
	spriteSun    = "sun"
	spriteBullet = "bullet"
)

// Fallback colours used when a sprite image is missing.
var (
	colorTileA    = color.RGBA{R: 86, G: 160, B: 60, A: 255}
	colorTileB    = color.RGBA{R: 104, G: 178, B: 72, A: 255}
	colorToolbar  = color.RGBA{R: 120, G: 84, B: 48, A: 255}
	colorSlot     = color.RGBA{R: 150, G: 110, B: 70, A: 255}
	colorSelected = color.RGBA{R: 250, G: 220, B: 80, A: 255}
	colorZombie   = color.RGBA{R: 120, G: 110, B: 90, A: 255}
	colorBiting   = color.RGBA{R: 190, G: 60, B: 50, A: 255}
	colorBullet   = color.RGBA{R: 140, G: 230, B: 90, A: 255}
	colorSun      = color.RGBA{R: 255, G: 210, B: 40, A: 255}
	colorHealth   = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	colorShade    = color.RGBA{A: 160}
)

var kindColors = map[sim.Kind]color.RGBA{
	sim.KindShooter:   {R: 40, G: 140, B: 40, A: 255},
	sim.KindSunflower: {R: 240, G: 150, B: 30, A: 255},
}

// sprites holds the images found in the assets directory. Missing
// entries are drawn as coloured shapes.
type sprites map[string]*ebiten.Image

// loadSprites reads <name>.png for every plant kind, zombies, suns and
// bullets. An empty dir disables sprites.
func loadSprites(dir string, logger *log.Logger) sprites {
	out := make(sprites)
	if dir == "" {
		return out
	}

	names := []string{spriteZombie, spriteSun, spriteBullet}
	for _, k := range sim.Kinds() {
		names = append(names, k.String())
	}

	for _, name := range names {
		path := filepath.Join(dir, name+".png")
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("could not load sprite", "path", path, "error", err)
			}
			continue
		}
		out[name] = img
	}
	logger.Debug("sprites loaded", "dir", dir, "count", len(out))
	return out
}

// draw scales the named sprite into the w x h box at (x, y).
// It reports false when no such sprite was loaded.
func (s sprites) draw(dst *ebiten.Image, name string, x, y, w, h float64) bool {
	img, ok := s[name]
	if !ok {
		return false
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
	return true
}
