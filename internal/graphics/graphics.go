package graphics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer is driven by Run once per frame: Update, then Draw inside BeginDrawing/EndDrawing.
// Resize is called whenever the window size changes.
type Renderer interface {
	Update()
	Draw()
	Resize(width, height int)
	Close()
}

// Options configures the window.
type Options struct {
	Width     int
	Height    int
	Title     string
	TargetFPS int
}

// Run opens a resizable window, builds the renderer with load once the GL context exists,
// and runs the main loop until the window is closed. The renderer is closed before the
// window. Run must be called from the thread that locked itself with runtime.LockOSThread.
func Run(opts Options, load func(width, height int) (Renderer, error)) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("graphics: window %dx%d could not be created", opts.Width, opts.Height)
	}
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}

	r, err := load(rl.GetScreenWidth(), rl.GetScreenHeight())
	if err != nil {
		return err
	}
	defer r.Close()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			r.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		r.Update()

		rl.BeginDrawing()
		r.Draw()
		rl.EndDrawing()
	}
	return nil
}
