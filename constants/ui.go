package constants

// UI Layout Constants
const (
	// FloorRune is drawn across the floor row
	FloorRune = '▔'

	// StatusBarRows is the number of rows reserved below the floor
	StatusBarRows = 1

	// MinPlayRows is the smallest playfield height the renderer accepts
	MinPlayRows = 4
)

// UI Text
const (
	GameOverText    = "Game Over! :("
	RestartHintText = "press enter to restart"
	PausedText      = "paused (esc to resume)"
)

// Canvas (ebiten) Layout Constants
const (
	// CanvasWidth and CanvasHeight are the logical canvas size in pixels
	CanvasWidth  = 600
	CanvasHeight = 800

	// CanvasCellWidth and CanvasCellHeight match the ebitenutil debug font glyph box
	CanvasCellWidth  = 6
	CanvasCellHeight = 16

	// CanvasFloorThickness is the floor bar height in pixels
	CanvasFloorThickness = 4
)
