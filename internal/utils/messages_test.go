package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/storefront-admin/internal/collaborator"
	"github.com/javajoker/storefront-admin/internal/crud"
	"github.com/javajoker/storefront-admin/internal/models"
)

func opErr(op crud.Op, entity string, err error) error {
	return &crud.OperationError{Op: op, Entity: entity, Err: err}
}

func TestMessage(t *testing.T) {
	unavailable := fmt.Errorf("%w: GET /products: connection refused", collaborator.ErrUnavailable)

	tests := []struct {
		name string
		lang string
		err  error
		want string
	}{
		{"nil", "en", nil, ""},
		{"validation", "en", opErr(crud.OpCreate, "product", ValidateStruct(models.ProductForm{})), "Product name is required"},
		{"collaborator message", "en", opErr(crud.OpCreate, "user", &collaborator.APIError{StatusCode: 400, Message: "Email already exists"}), "Email already exists"},
		{"collaborator without message", "en", opErr(crud.OpDelete, "order", &collaborator.APIError{StatusCode: 500}), "Failed to delete order"},
		{"transport on load", "en", opErr(crud.OpLoad, "product", unavailable), "Failed to fetch products"},
		{"transport on update", "en", opErr(crud.OpUpdate, "review", unavailable), "Failed to update review"},
		{"translated generic", "zh_TW", opErr(crud.OpCreate, "product", unavailable), "無法建立商品"},
		{"busy", "en", opErr(crud.OpLoad, "user", crud.ErrBusy), "A previous user request is still in progress"},
		{"not found", "en", opErr(crud.OpEdit, "order", crud.ErrNotFound), "No order with that ID in the current list"},
		{"cancelled", "en", opErr(crud.OpDelete, "order", crud.ErrCancelled), "Deletion cancelled"},
		{"unknown entity", "en", opErr(crud.OpCreate, "coupon", unavailable), "Failed to create coupon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.lang, tt.err))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{opErr(crud.OpCreate, "user", ValidateStruct(models.UserForm{})), http.StatusBadRequest, CodeValidation},
		{opErr(crud.OpLoad, "user", crud.ErrBusy), http.StatusConflict, CodeBusy},
		{opErr(crud.OpEdit, "user", crud.ErrNotFound), http.StatusNotFound, CodeNotFound},
		{opErr(crud.OpUpdate, "user", crud.ErrNoEditTarget), http.StatusConflict, CodeNoEditTarget},
		{opErr(crud.OpDelete, "user", crud.ErrCancelled), http.StatusPreconditionFailed, CodeConfirmationRequired},
		{opErr(crud.OpDelete, "user", &collaborator.APIError{StatusCode: 404}), http.StatusBadGateway, CodeCollaborator},
		{opErr(crud.OpLoad, "user", collaborator.ErrUnavailable), http.StatusBadGateway, CodeCollaborator},
		{opErr(crud.OpLoad, "user", collaborator.ErrBadResponse), http.StatusBadGateway, CodeCollaborator},
		{fmt.Errorf("boom"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		status, code := Classify(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.code, code, tt.err.Error())
	}
}

func TestOperationErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("lang", "en")

	err := opErr(crud.OpCreate, "product", ValidateStruct(models.ProductForm{ProductName: "n", Description: "d", Price: "0", Stock: "1"}))
	OperationErrorResponse(c, err, gin.H{"entity": "product"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Success bool
		Data    map[string]interface{}
		Error   struct {
			Code    string
			Message string
			Details []ValidationError
		}
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "product", body.Data["entity"])
	assert.Equal(t, CodeValidation, body.Error.Code)
	assert.Equal(t, "Price must be at least 0.01", body.Error.Message)
	require.Len(t, body.Error.Details, 1)
	assert.Equal(t, "price", body.Error.Details[0].Field)
}
