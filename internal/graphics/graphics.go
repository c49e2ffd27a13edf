// Package graphics owns the window and main loop. It stays ignorant of what
// is being drawn; the viewer passes update and draw callbacks.
package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1600
	windowHeight = 900
	windowTitle  = "Mall Viewer"
	targetFPS    = 60
)

// Run starts the window and main loop. Each frame it calls update with the
// frame time in seconds, then clears the screen and calls draw.
// ESC toggles the console; close via the window button.
func Run(update func(dt float32), draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC toggles the console, not quit
	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(18, 18, 22, 255))
		draw()
		rl.EndDrawing()
	}
}
