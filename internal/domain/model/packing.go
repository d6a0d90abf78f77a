package model

// Assignment pairs a box with the ordered list of items placed in it.
// Invariant: every item has at least one orientation that fits the box,
// and the full list passes the shelf packing check for the box.
type Assignment struct {
	Box   Box
	Items []Item
}

// BoxDimensions carries the outer dimensions of a packed box in a response.
//
// @Description Outer dimensions of a box
type BoxDimensions struct {
	Length int `json:"length" example:"8"`
	Width  int `json:"width" example:"6"`
	Height int `json:"height" example:"4"`
}

// PackedBox represents one box of a packing result.
//
// @Description A box with the SKUs assigned to it, in original request order
// @Example {"box_id": "BX-S", "dimensions": {"length": 8, "width": 6, "height": 4}, "items": ["SKU-1"]}
type PackedBox struct {
	// BoxID is the catalog identifier of the box used
	BoxID string `json:"box_id" example:"BX-S"`
	// Dimensions are the outer dimensions of the box
	Dimensions BoxDimensions `json:"dimensions"`
	// Items lists the assigned SKUs in their original request order
	Items []string `json:"items"`
}

// PackingResult represents the complete result of a packing computation.
// Boxes are sorted ascending by volume and together cover every input
// item exactly once.
//
// @Description Packing result containing the chosen boxes and their items
// @Example {"boxes": [{"box_id": "BX-S", "dimensions": {"length": 8, "width": 6, "height": 4}, "items": ["A"]}], "total_boxes": 1}
type PackingResult struct {
	// Boxes is the list of packed boxes, smallest first
	Boxes []PackedBox `json:"boxes"`
	// TotalBoxes is the number of boxes used
	TotalBoxes int `json:"total_boxes" example:"1"`
}
