package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws optional text overlays in the top-right corner. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowAngle    bool
	ShowMemAlloc bool

	frameCount    uint32
	lastFpsText   string
	lastAngleText string
	lastMemText   string
	lastMemStats  runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Enabled reports whether any overlay is on.
func (d *Debug) Enabled() bool {
	return d.ShowFPS || d.ShowAngle || d.ShowMemAlloc
}

// Draw renders the enabled overlays after the 3D pass. angle is the scene clock in radians.
func (d *Debug) Draw(angle float32) {
	if !d.Enabled() {
		return
	}
	d.frameCount++
	update := d.frameCount%updateInterval == 0 ||
		(d.ShowFPS && d.lastFpsText == "") ||
		(d.ShowAngle && d.lastAngleText == "") ||
		(d.ShowMemAlloc && d.lastMemText == "")

	if update {
		d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		d.lastAngleText = fmt.Sprintf("Angle: %.3f rad", angle)
		if d.ShowMemAlloc {
			runtime.ReadMemStats(&d.lastMemStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024))
		}
	}

	// The overlay is 2D; the scene leaves depth testing on.
	rl.DisableDepthTest()
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, line := range []struct {
		show bool
		text string
	}{
		{d.ShowFPS, d.lastFpsText},
		{d.ShowAngle, d.lastAngleText},
		{d.ShowMemAlloc, d.lastMemText},
	} {
		if !line.show || line.text == "" {
			continue
		}
		w := rl.MeasureText(line.text, fontSize)
		rl.DrawText(line.text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
