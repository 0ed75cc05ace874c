// Package shape names the selectable target outlines. The shape changes
// only what the renderer draws; the hit window is always the 1-D radius
// comparison, whatever outline is on screen.
package shape

// ID identifies an outline shape. The string form is what gets persisted
// as the player's preference.
type ID string

const (
	Circle   ID = "circle"
	Square   ID = "square"
	Triangle ID = "triangle"
	Diamond  ID = "diamond"
)

// All lists the shapes in selection-cycle order. The first is the default.
var All = []ID{Circle, Square, Triangle, Diamond}

// Default returns the shape used when no preference is stored.
func Default() ID {
	return All[0]
}

// Valid reports whether id names a known shape.
func Valid(id ID) bool {
	for _, s := range All {
		if s == id {
			return true
		}
	}
	return false
}

// Normalize returns id unchanged when valid and the default otherwise,
// so an unknown persisted value degrades to a playable shape.
func Normalize(id ID) ID {
	if Valid(id) {
		return id
	}
	return Default()
}

// Next returns the shape after id in cycle order, wrapping at the end.
func Next(id ID) ID {
	for i, s := range All {
		if s == id {
			return All[(i+1)%len(All)]
		}
	}
	return Default()
}
