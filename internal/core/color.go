package core

// Color is a cell foreground color as a "#rrggbb" hex string.
// The empty string is the terminal's default color.
type Color string

// ColorDefault leaves the terminal's foreground color unchanged.
const ColorDefault Color = ""
