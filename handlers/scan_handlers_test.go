package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performScanRequest(t *testing.T, url string) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/scan/resolve", ResolveScan)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestResolveScan_MissingPayload(t *testing.T) {
	w := performScanRequest(t, "/api/scan/resolve")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "payload is required", body["error"])
}

func TestResolveScan_MalformedPayload(t *testing.T) {
	testCases := []struct {
		name string
		url  string
	}{
		{"garbage payload", "/api/scan/resolve?payload=not%20a%20url"},
		{"unknown scheme", "/api/scan/resolve?payload=ftp%3A%2F%2Frestaurant%2Fr1%2Ftable%2F2"},
		{"missing table param", "/api/scan/resolve?payload=https%3A%2F%2Fklub.app%2Fscan%3Frestaurant%3Dr1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := performScanRequest(t, tc.url)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Invalid QR payload", body["error"])
			assert.NotEmpty(t, body["details"])
		})
	}
}
