package registry

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// DefaultStyle is the style used when no random pick is wanted.
const DefaultStyle = "go-regular"

// The embedded Go font family stands in for the browser font list.
func init() {
	Register("go-regular", "Go Regular", goregular.TTF)
	Register("go-bold", "Go Bold", gobold.TTF)
	Register("go-italic", "Go Italic", goitalic.TTF)
	Register("go-bold-italic", "Go Bold Italic", gobolditalic.TTF)
	Register("go-medium", "Go Medium", gomedium.TTF)
	Register("go-mono", "Go Mono", gomono.TTF)
	Register("go-mono-bold", "Go Mono Bold", gomonobold.TTF)
	Register("go-smallcaps", "Go Smallcaps", gosmallcaps.TTF)
}
