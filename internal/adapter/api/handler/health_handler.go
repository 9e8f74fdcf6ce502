package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ConnectionTester reports whether a backing service answers.
type ConnectionTester interface {
	TestConnection(ctx context.Context) error
}

// ConnectionCounter reports live WebSocket users.
type ConnectionCounter interface {
	ConnectedUsers() int
}

type HealthHandler struct {
	firebaseAuth ConnectionTester
	connections  ConnectionCounter
}

var healthHandler *HealthHandler

func NewHealthHandler(firebaseAuth ConnectionTester, connections ConnectionCounter) *HealthHandler {
	return &HealthHandler{
		firebaseAuth: firebaseAuth,
		connections:  connections,
	}
}

func SetupHealthHandler(firebaseAuth ConnectionTester, connections ConnectionCounter) {
	healthHandler = NewHealthHandler(firebaseAuth, connections)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	body := map[string]interface{}{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	}
	if h.connections != nil {
		body["websocket_users"] = h.connections.ConnectedUsers()
	}
	return c.JSON(http.StatusOK, body)
}

func (h *HealthHandler) CheckFirebaseHealth(c echo.Context) error {
	if h.firebaseAuth == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "Firebase Auth not configured",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.firebaseAuth.TestConnection(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "Firebase Auth connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Firebase Auth connected successfully",
	})
}
