package core

import (
	"image/color"
	"strings"
)

// Color is a palette entry shared by every host.
// Terminal hosts map it to ANSI 256-color codes, window hosts to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGold
	ColorPurple
	ColorSky
	ColorLime
	ColorTurquoise
	ColorGray
)

var colorNames = map[string]Color{
	"default":   ColorDefault,
	"black":     ColorBlack,
	"red":       ColorRed,
	"green":     ColorGreen,
	"yellow":    ColorYellow,
	"blue":      ColorBlue,
	"magenta":   ColorMagenta,
	"cyan":      ColorCyan,
	"white":     ColorWhite,
	"orange":    ColorOrange,
	"gold":      ColorGold,
	"purple":    ColorPurple,
	"sky":       ColorSky,
	"lime":      ColorLime,
	"turquoise": ColorTurquoise,
	"gray":      ColorGray,
}

var colorRGBA = map[Color]color.RGBA{
	ColorDefault:   {0xFF, 0xFF, 0xFF, 0xFF},
	ColorBlack:     {0x00, 0x00, 0x00, 0xFF},
	ColorRed:       {0xFF, 0x44, 0x44, 0xFF},
	ColorGreen:     {0x4C, 0xAF, 0x50, 0xFF},
	ColorYellow:    {0xFE, 0xE4, 0x40, 0xFF},
	ColorBlue:      {0x21, 0x96, 0xF3, 0xFF},
	ColorMagenta:   {0x9C, 0x27, 0xB0, 0xFF},
	ColorCyan:      {0x00, 0xBF, 0xFF, 0xFF},
	ColorWhite:     {0xFF, 0xFF, 0xFF, 0xFF},
	ColorOrange:    {0xFF, 0x8C, 0x00, 0xFF},
	ColorGold:      {0xFF, 0xD7, 0x00, 0xFF},
	ColorPurple:    {0x66, 0x7E, 0xEA, 0xFF},
	ColorSky:       {0x45, 0xB7, 0xD1, 0xFF},
	ColorLime:      {0x32, 0xCD, 0x32, 0xFF},
	ColorTurquoise: {0x4E, 0xCD, 0xC4, 0xFF},
	ColorGray:      {0x80, 0x80, 0x80, 0xFF},
}

// ParseColor resolves a color by its configuration name (case-insensitive).
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// RGBA returns the color used by pixel-based hosts.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := colorRGBA[c]; ok {
		return rgba
	}
	return colorRGBA[ColorDefault]
}

// String returns the configuration name of the color.
func (c Color) String() string {
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	return "unknown"
}
