// internal/utils/messages.go
package utils

import (
	"errors"
	"net/http"

	"github.com/javajoker/storefront-admin/internal/collaborator"
	"github.com/javajoker/storefront-admin/internal/crud"
	"github.com/javajoker/storefront-admin/internal/i18n"
)

// Error codes carried in API error bodies.
const (
	CodeBadRequest           = "BAD_REQUEST"
	CodeValidation           = "VALIDATION_ERROR"
	CodeNotFound             = "NOT_FOUND"
	CodeNoEditTarget         = "NO_EDIT_TARGET"
	CodeBusy                 = "BUSY"
	CodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	CodeCollaborator         = "COLLABORATOR_ERROR"
	CodeRateLimited          = "RATE_LIMITED"
	CodeInternal             = "INTERNAL_ERROR"
)

// Message reduces a page operation failure to the single line shown to the
// operator. A collaborator's own message wins over the generic one.
func Message(lang string, err error) string {
	if err == nil {
		return ""
	}

	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return validationErrs.Localize(lang)[0].Message
	}

	var op crud.Op
	var entity string
	var opErr *crud.OperationError
	if errors.As(err, &opErr) {
		op = opErr.Op
		entity = EntityLabel(lang, opErr.Entity)
	}

	switch {
	case errors.Is(err, crud.ErrBusy):
		return i18n.T(lang, i18n.KeyBusy, entity)
	case errors.Is(err, crud.ErrNotFound):
		return i18n.T(lang, i18n.KeyNotFound, entity)
	case errors.Is(err, crud.ErrNoEditTarget):
		return i18n.T(lang, i18n.KeyNoEditTarget, entity)
	case errors.Is(err, crud.ErrCancelled):
		return i18n.T(lang, i18n.KeyCancelled)
	}

	var apiErr *collaborator.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	switch op {
	case crud.OpLoad:
		return i18n.T(lang, i18n.KeyLoadFailed, entity)
	case crud.OpCreate:
		return i18n.T(lang, i18n.KeyCreateFailed, entity)
	case crud.OpUpdate:
		return i18n.T(lang, i18n.KeyUpdateFailed, entity)
	case crud.OpDelete:
		return i18n.T(lang, i18n.KeyDeleteFailed, entity)
	}
	return i18n.T(lang, i18n.KeyInternal)
}

// EntityLabel translates an entity name, falling back to the name itself.
func EntityLabel(lang, entity string) string {
	key := "entity." + entity
	if label := i18n.T(lang, key); label != key {
		return label
	}
	return entity
}

// Classify maps a page operation failure to an HTTP status and error code.
func Classify(err error) (int, string) {
	var validationErrs ValidationErrors
	var apiErr *collaborator.APIError

	switch {
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, CodeValidation
	case errors.Is(err, crud.ErrBusy):
		return http.StatusConflict, CodeBusy
	case errors.Is(err, crud.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, crud.ErrNoEditTarget):
		return http.StatusConflict, CodeNoEditTarget
	case errors.Is(err, crud.ErrCancelled):
		return http.StatusPreconditionFailed, CodeConfirmationRequired
	case errors.As(err, &apiErr),
		errors.Is(err, collaborator.ErrUnavailable),
		errors.Is(err, collaborator.ErrBadResponse):
		return http.StatusBadGateway, CodeCollaborator
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}
