package ebitenhost

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the overlay text is redrawn.
const fpsRefresh = 500 * time.Millisecond

// fpsOverlay shows the current FPS and TPS in the top-left corner.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed time.Duration
	drawn   bool
}

// update accumulates dt and redraws the text every fpsRefresh.
func (f *fpsOverlay) update(dt time.Duration) {
	f.elapsed += dt
	if f.drawn && f.elapsed < fpsRefresh {
		return
	}
	f.elapsed = 0
	f.drawn = true

	if f.img == nil {
		// 100x32 fits "FPS: 60.0\nTPS: 60.0"
		f.img = ebiten.NewImage(100, 32)
	}
	f.img.Clear()
	f.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	if f.img != nil {
		screen.DrawImage(f.img, nil)
	}
}
