package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Backlog reports how many tick loop messages are waiting for the consumer.
type Backlog interface {
	Len() int
}

type HealthHandler struct {
	backlog Backlog
}

func NewHealthHandler(backlog Backlog) *HealthHandler {
	return &HealthHandler{backlog: backlog}
}

func (h *HealthHandler) Check(c *gin.Context) {
	body := gin.H{"status": "ok"}
	if h.backlog != nil {
		body["queued"] = h.backlog.Len()
	}
	c.JSON(http.StatusOK, body)
}
