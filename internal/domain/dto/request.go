// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "fmt"

// Dimensions represents the three outer dimensions of an item or box.
//
// @Description Positive integer dimensions
// @Example {"length": 8, "width": 6, "height": 4}
type Dimensions struct {
	// Length must be greater than 0.
	Length int `json:"length" binding:"required,gt=0" example:"8" minimum:"1"`
	// Width must be greater than 0.
	Width int `json:"width" binding:"required,gt=0" example:"6" minimum:"1"`
	// Height must be greater than 0.
	Height int `json:"height" binding:"required,gt=0" example:"4" minimum:"1"`
} // @name Dimensions

// ItemInput represents one item of a pack request.
//
// @Description A single item with its SKU and dimensions
// @Example {"sku": "SKU-1", "dimensions": {"length": 8, "width": 4, "height": 4}}
type ItemInput struct {
	// SKU is the stock-keeping identifier, unique within a request.
	SKU string `json:"sku" binding:"required,min=1" example:"SKU-1"`
	// Dimensions are the item's outer dimensions.
	Dimensions Dimensions `json:"dimensions" binding:"required"`
} // @name ItemInput

// PackItemsRequest represents the JSON request body for the pack endpoint.
//
// Validation is performed using gin's binding tags plus Validate for the
// cross-field rules (duplicate SKUs) that binding tags cannot express.
//
// @Description Request to pack a list of items into catalog boxes
// @Example {"items": [{"sku": "A", "dimensions": {"length": 1, "width": 1, "height": 1}}]}
type PackItemsRequest struct {
	// Items is the ordered list of items to pack. Must not be empty.
	Items []ItemInput `json:"items" binding:"required,min=1,dive"`
} // @name PackItemsRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *PackItemsRequest) Validate() error {
	if len(r.Items) == 0 {
		return &ValidationError{Field: "items", Message: "must not be empty"}
	}

	seen := make(map[string]bool, len(r.Items))
	for _, it := range r.Items {
		if it.SKU == "" {
			return &ValidationError{Field: "sku", Message: "must not be empty"}
		}
		if it.Dimensions.Length <= 0 || it.Dimensions.Width <= 0 || it.Dimensions.Height <= 0 {
			return &ValidationError{
				Field:   "dimensions",
				Message: fmt.Sprintf("item %q dimensions must be positive integers", it.SKU),
			}
		}
		if seen[it.SKU] {
			return &ValidationError{
				Field:   "sku",
				Message: fmt.Sprintf("duplicate sku %q is not allowed", it.SKU),
			}
		}
		seen[it.SKU] = true
	}
	return nil
}

// BoxInput represents one box template of a catalog update request.
type BoxInput struct {
	// BoxID is the catalog identifier of the box.
	BoxID string `json:"box_id" binding:"required,min=1" example:"BX-S"`
	// Dimensions are the box's outer dimensions.
	Dimensions Dimensions `json:"dimensions" binding:"required"`
} // @name BoxInput

// UpdateBoxCatalogRequest represents the JSON request body for replacing the box catalog.
type UpdateBoxCatalogRequest struct {
	// Boxes is the list of box templates for the new catalog.
	Boxes []BoxInput `json:"boxes" binding:"required,min=1,dive"`
	// CreatedBy is the identifier of who created this configuration.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdateBoxCatalogRequest

// Validate performs custom validation on the catalog update request.
func (r *UpdateBoxCatalogRequest) Validate() error {
	if len(r.Boxes) == 0 {
		return &ValidationError{Field: "boxes", Message: "must not be empty"}
	}

	seen := make(map[string]bool, len(r.Boxes))
	for _, b := range r.Boxes {
		if b.BoxID == "" {
			return &ValidationError{Field: "box_id", Message: "must not be empty"}
		}
		if b.Dimensions.Length <= 0 || b.Dimensions.Width <= 0 || b.Dimensions.Height <= 0 {
			return &ValidationError{
				Field:   "dimensions",
				Message: fmt.Sprintf("box %q dimensions must be positive integers", b.BoxID),
			}
		}
		if seen[b.BoxID] {
			return &ValidationError{
				Field:   "box_id",
				Message: fmt.Sprintf("duplicate box_id %q is not allowed", b.BoxID),
			}
		}
		seen[b.BoxID] = true
	}
	return nil
}
