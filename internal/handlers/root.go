package handlers

import (
	"fmt"
	"net/http"

	"github.com/sbilibin2017/roommate-service/internal/models"
)

// NewRootHandler returns the liveness handler served at /.
// @Summary Service status
// @Tags status
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router / [get]
func NewRootHandler(projectName string) http.HandlerFunc {
	resp := models.StatusResponse{
		Status:  "online",
		Message: fmt.Sprintf("Welcome to the %s. Visit /docs for API documentation.", projectName),
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}
