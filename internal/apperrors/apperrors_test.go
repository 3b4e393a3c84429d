package apperrors_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/apperrors"
	"todo-api/internal/models"
)

func TestKindStatusCode(t *testing.T) {
	// 分類とステータスの対応は閉じた集合で、ここで網羅的に固定する
	cases := []struct {
		kind apperrors.Kind
		want int
	}{
		{apperrors.Validation, http.StatusBadRequest},
		{apperrors.NotFound, http.StatusNotFound},
		{apperrors.IdentifierDecode, http.StatusInternalServerError},
		{apperrors.Storage, http.StatusInternalServerError},
		{apperrors.Internal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.kind.StatusCode())
	}
}

func TestNewValidation_FieldMessages(t *testing.T) {
	// ginのバインディングと同じタグ名でvalidatorを構成する
	v := validator.New()
	v.SetTagName("binding")

	err := v.Struct(models.CreateTodoRequest{Title: ""})
	require.Error(t, err)

	appErr := apperrors.NewValidation(err)
	assert.Equal(t, apperrors.Validation, appErr.Kind)
	assert.Contains(t, appErr.Message, "Input validation failed")
	assert.Contains(t, appErr.Message, "title cannot be empty")
}

func TestNewValidation_MalformedPayload(t *testing.T) {
	appErr := apperrors.NewValidation(errors.New("unexpected EOF"))
	assert.Equal(t, apperrors.Validation, appErr.Kind)
	assert.Equal(t, "Invalid request payload", appErr.Message)
}

func TestJSON_OpaqueMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Storage failure hides driver detail",
			err:        apperrors.NewStorage(errors.New("dial tcp: connection refused")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"An internal database error occurred."}`,
		},
		{
			name:       "Identifier decode failure is internal",
			err:        apperrors.NewIdentifierDecode(errors.New("invalid UUID length: 5")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Error processing identifier."}`,
		},
		{
			name:       "Not found uses the fixed message",
			err:        apperrors.NewNotFound(),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"The requested item was not found."}`,
		},
		{
			name:       "Unclassified errors fall back to internal",
			err:        errors.New("something unexpected"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"An unexpected error occurred."}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			apperrors.JSON(c, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.JSONEq(t, tc.wantBody, w.Body.String())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	appErr := apperrors.NewStorage(cause)
	assert.ErrorIs(t, appErr, cause)
}
