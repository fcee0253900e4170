package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cnpjPayload struct {
	CNPJ     string `json:"cnpj" binding:"required,cnpj"`
	Currency string `json:"currency" binding:"omitempty,currency"`
}

func setupValidationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, SetupValidator())

	engine := gin.New()
	engine.POST("/validate", func(c *gin.Context) {
		var req cnpjPayload
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})
	return engine
}

func postJSON(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestValidator_CNPJTag(t *testing.T) {
	engine := setupValidationRouter(t)

	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{"formatted cnpj", `{"cnpj": "12.345.678/0001-95"}`, http.StatusOK},
		{"bare digits", `{"cnpj": "12345678000195"}`, http.StatusOK},
		{"too short", `{"cnpj": "12345678"}`, http.StatusBadRequest},
		{"letters", `{"cnpj": "not-a-cnpj"}`, http.StatusBadRequest},
		{"missing", `{}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(engine, tt.body)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestValidator_CurrencyTag(t *testing.T) {
	engine := setupValidationRouter(t)

	valid := postJSON(engine, `{"cnpj": "12345678000195", "currency": "USD"}`)
	assert.Equal(t, http.StatusOK, valid.Code)

	invalid := postJSON(engine, `{"cnpj": "12345678000195", "currency": "EUR"}`)
	assert.Equal(t, http.StatusBadRequest, invalid.Code)
	assert.Contains(t, invalid.Body.String(), "BRL, USD")
}

func TestValidator_FieldNamesUseJSONTags(t *testing.T) {
	engine := setupValidationRouter(t)

	w := postJSON(engine, `{"cnpj": "bad"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"cnpj"`)
	assert.Contains(t, w.Body.String(), "ERR_VALIDATION")
}
