// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyRateLimited = "common.rate_limited"
	KeyBadRequest  = "common.bad_request"
	KeyInternal    = "common.internal_error"

	// Validation, formatted with the field label
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
	KeyValidationEmail    = "validation.invalid_email"
	KeyValidationTooSmall = "validation.too_small"
	KeyValidationTooLarge = "validation.too_large"
	KeyValidationStatus   = "validation.invalid_status"

	// Page operations, formatted with the entity name
	KeyLoadFailed   = "crud.load_failed"
	KeyCreateFailed = "crud.create_failed"
	KeyUpdateFailed = "crud.update_failed"
	KeyDeleteFailed = "crud.delete_failed"
	KeyNotFound     = "crud.not_found"
	KeyNoEditTarget = "crud.no_edit_target"
	KeyBusy         = "crud.busy"
	KeyCancelled    = "crud.cancelled"
	KeyConfirm      = "crud.confirm_delete"

	// Entities
	KeyEntityUser    = "entity.user"
	KeyEntityProduct = "entity.product"
	KeyEntityOrder   = "entity.order"
	KeyEntityReview  = "entity.review"
)
