// Package registry provides a global registry of font styles used to
// rasterize names into obstacle layouts. Font packages register themselves
// in init() functions, so the generator can pick a style without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// StyleInfo contains metadata about a registered font style.
type StyleInfo struct {
	ID    string
	Title string
}

type style struct {
	title  string
	ttf    []byte
	parsed *opentype.Font // Parsed lazily on first Face call
}

var (
	styles = make(map[string]*style)
	mu     sync.RWMutex
)

// Register adds a TrueType/OpenType font under the given ID.
// Typically called from an init() function.
// Panics if a style with the same ID is already registered.
func Register(id, title string, ttf []byte) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := styles[id]; exists {
		panic(fmt.Sprintf("registry: font style %q already registered", id))
	}
	styles[id] = &style{title: title, ttf: ttf}
}

// List returns information about all registered styles, sorted by ID.
func List() []StyleInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StyleInfo, 0, len(styles))
	for id, s := range styles {
		result = append(result, StyleInfo{ID: id, Title: s.title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Exists checks if a style with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := styles[id]
	return ok
}

// Random picks a registered style ID using rng.
// Returns an empty string when nothing is registered.
func Random(rng *rand.Rand) string {
	list := List()
	if len(list) == 0 {
		return ""
	}
	return list[rng.Intn(len(list))].ID
}

// Face creates a font face of the given pixel size for a registered style.
// Returns an error if the ID is unknown or the font cannot be parsed.
func Face(id string, size float64) (font.Face, error) {
	f, err := parsed(id)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // 72 DPI makes Size a pixel size
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create face %q: %w", id, err)
	}
	return face, nil
}

// parsed returns the parsed font for id, parsing it on first use.
func parsed(id string) (*opentype.Font, error) {
	mu.Lock()
	defer mu.Unlock()

	s, ok := styles[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown font style %q", id)
	}
	if s.parsed == nil {
		f, err := opentype.Parse(s.ttf)
		if err != nil {
			return nil, fmt.Errorf("registry: cannot parse font %q: %w", id, err)
		}
		s.parsed = f
	}
	return s.parsed, nil
}
