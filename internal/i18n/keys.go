// Package i18n provides internationalization support for the box picker service.
package i18n

// Translation keys for error messages. Each key must have an entry in the
// message catalog for every supported locale.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyForbidden          = "error.forbidden"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyValidationItems    = "error.validation.items"

	// ErrKeyItemTooLarge is reported when an item exceeds every box in the catalog.
	ErrKeyItemTooLarge = "error.item_too_large"
	// ErrKeyPackingFailed is reported when the packer could not place all items.
	ErrKeyPackingFailed = "error.packing_failed"

	ErrKeyInvalidToken  = "error.invalid_token"
	ErrKeyTokenRequired = "error.token_required"
	ErrKeyTimeout       = "error.timeout"
)

// Translation keys for success messages.
const (
	SuccessKeyItemsPacked    = "success.items_packed"
	SuccessKeyCatalogUpdated = "success.catalog_updated"
)
