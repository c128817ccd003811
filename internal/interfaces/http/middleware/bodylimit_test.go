package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBodyLimitRouter(limit int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(BodyLimit(limit))
	r.POST("/farms", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.String(http.StatusBadRequest, "read failed")
			return
		}
		c.String(http.StatusOK, "ok")
	})
	r.GET("/farms", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestBodyLimit(t *testing.T) {
	tests := []struct {
		name          string
		limit         int64
		method        string
		body          string
		contentLength int64
		wantStatus    int
	}{
		{"body within limit", 1024, http.MethodPost, `{"name":"North farm"}`, 21, http.StatusOK},
		{"declared length over limit", 100, http.MethodPost, strings.Repeat("x", 200), 200, http.StatusRequestEntityTooLarge},
		{"chunked body over limit fails on read", 50, http.MethodPost, strings.Repeat("x", 100), -1, http.StatusBadRequest},
		{"request without body", 10, http.MethodGet, "", 0, http.StatusOK},
		{"limit disabled", 0, http.MethodPost, strings.Repeat("x", 500), 500, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, "/farms", body)
			req.ContentLength = tt.contentLength
			w := httptest.NewRecorder()

			newBodyLimitRouter(tt.limit).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestBodyLimit_ReportsFailedResult(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/farms", strings.NewReader(strings.Repeat("x", 64)))
	req.ContentLength = 64
	w := httptest.NewRecorder()

	newBodyLimitRouter(16).ServeHTTP(w, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "request body exceeds maximum allowed size", got["error"])
	assert.NotContains(t, got, "data")
}
