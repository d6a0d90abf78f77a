// Package model defines the core domain entities for the box picker service.
package model

import "sort"

// Box represents a single box template from the catalog.
//
// @Description Standard box size available for packing
// @Example {"box_id": "BX-S", "length": 8, "width": 6, "height": 4}
type Box struct {
	// ID is the catalog identifier of the box
	ID string `json:"box_id" example:"BX-S"`
	// Length is the outer length of the box
	Length int `json:"length" example:"8"`
	// Width is the outer width of the box
	Width int `json:"width" example:"6"`
	// Height is the outer height of the box
	Height int `json:"height" example:"4"`
}

// Volume returns the box volume (length * width * height).
func (b Box) Volume() int {
	return b.Length * b.Width * b.Height
}

// Catalog is an immutable, ascending-ordered sequence of box templates.
// Order is total and deterministic: by volume, ties broken by length,
// then width, then height.
type Catalog []Box

// DefaultCatalog defines the standard box sizes available for packing.
var DefaultCatalog = NewCatalog([]Box{
	{ID: "BX-S", Length: 8, Width: 6, Height: 4},
	{ID: "BX-M", Length: 12, Width: 10, Height: 6},
	{ID: "BX-L", Length: 16, Width: 12, Height: 8},
	{ID: "BX-XL", Length: 20, Width: 16, Height: 12},
	{ID: "BX-XXL", Length: 24, Width: 20, Height: 20},
})

// NewCatalog builds a catalog from the given boxes, sorted smallest first.
// The input slice is copied so the catalog cannot be mutated by the caller.
func NewCatalog(boxes []Box) Catalog {
	c := make(Catalog, len(boxes))
	copy(c, boxes)
	sort.Slice(c, func(i, j int) bool {
		vi, vj := c[i].Volume(), c[j].Volume()
		if vi != vj {
			return vi < vj
		}
		if c[i].Length != c[j].Length {
			return c[i].Length < c[j].Length
		}
		if c[i].Width != c[j].Width {
			return c[i].Width < c[j].Width
		}
		return c[i].Height < c[j].Height
	})
	return c
}

// Largest returns the biggest box in the catalog.
// Returns the zero Box if the catalog is empty.
func (c Catalog) Largest() Box {
	if len(c) == 0 {
		return Box{}
	}
	return c[len(c)-1]
}
