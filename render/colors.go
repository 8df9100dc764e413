package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWord       = tcell.NewRGBColor(200, 200, 200) // Light gray falling word
	RgbActiveWord = tcell.NewRGBColor(255, 165, 0)   // Orange word being typed
	RgbLanded     = tcell.NewRGBColor(255, 80, 80)   // Red word on the floor
	RgbFloor      = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg   = tcell.NewRGBColor(60, 100, 200)  // Dark Blue
	RgbPausedBg   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbGameOver   = tcell.NewRGBColor(255, 0, 0)     // Error Red
	RgbHint       = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// Styles derived from the palette
var (
	StyleDefault = tcell.StyleDefault.Background(RgbBackground)
	StyleWord    = StyleDefault.Foreground(RgbWord)
	StyleActive  = StyleDefault.Foreground(RgbActiveWord).Bold(true)
	StyleLanded  = StyleDefault.Foreground(RgbLanded)
	StyleFloor   = StyleDefault.Foreground(RgbFloor)
	StyleStatus  = tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbStatusBg)
	StylePaused  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(RgbPausedBg)
	StyleOver    = StyleDefault.Foreground(RgbGameOver).Bold(true)
	StyleHint    = StyleDefault.Foreground(RgbHint)
)
