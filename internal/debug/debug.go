// Package debug draws the viewer's runtime overlays.
package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Refresh the overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging overlays. All overlays are off by default.
// Counts, when set, supplies the scene statistics line (object and mesh
// binding counts).
type Debug struct {
	ShowFPS    bool
	ShowCounts bool
	Counts     func() (objects, meshes int)

	frameCount     uint32
	lastFpsText    string
	lastCountsText string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowCounts sets whether the scene statistics line is drawn under FPS.
func (d *Debug) SetShowCounts(show bool) {
	d.ShowCounts = show
}

// Draw renders any enabled overlays. Call after the scene and console in
// the draw loop. Text is only recomputed every updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowCounts && d.lastCountsText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRightAligned(d.lastFpsText, screenW, y, rl.Green)
		y += lineHeight
	}

	if d.ShowCounts && d.Counts != nil {
		if update {
			objects, meshes := d.Counts()
			d.lastCountsText = fmt.Sprintf("Objects: %d  Meshes: %d", objects, meshes)
		}
		drawRightAligned(d.lastCountsText, screenW, y, rl.Green)
	}
}

func drawRightAligned(text string, screenW, y int32, color rl.Color) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, color)
}
