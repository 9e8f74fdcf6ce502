package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHealthHandler(nil, fakeConnectionCounter(3))

	if assert.NoError(t, h.CheckHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Server is running", body["status"])
		assert.EqualValues(t, 3, body["websocket_users"])
	}
}

func TestFirebaseHealth(t *testing.T) {
	tests := []struct {
		name   string
		tester ConnectionTester
		status int
	}{
		{"not configured", nil, http.StatusServiceUnavailable},
		{"connected", fakeConnectionTester{}, http.StatusOK},
		{"failing", fakeConnectionTester{err: errors.New("deadline exceeded")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/firebase-health", nil)
			rec := httptest.NewRecorder()

			h := NewHealthHandler(tt.tester, nil)
			require.NoError(t, h.CheckFirebaseHealth(e.NewContext(req, rec)))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
