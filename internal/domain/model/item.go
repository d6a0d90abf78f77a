package model

// Item represents a single rectangular item to be packed.
// Position records the item's index in the original request; it is used
// only to restore output order, never for packing decisions.
type Item struct {
	SKU      string
	Length   int
	Width    int
	Height   int
	Position int
}

// Volume returns the item volume (length * width * height).
func (it Item) Volume() int {
	return it.Length * it.Width * it.Height
}

// MaxDimension returns the largest of the item's three dimensions.
func (it Item) MaxDimension() int {
	m := it.Length
	if it.Width > m {
		m = it.Width
	}
	if it.Height > m {
		m = it.Height
	}
	return m
}
