package handlers

import (
	"net/http"

	"github.com/dom/hxh-catalog/internal/config"
)

type InfoResponse struct {
	Message string         `json:"message"`
	Backend config.Backend `json:"backend"`
}

// Info serves GET /, which is not part of the resource contract.
func Info(backend config.Backend) http.HandlerFunc {
	title := "Hunter x Hunter Relational API"
	if backend == config.BackendDocument {
		title = "Hunter x Hunter NoSQL API"
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, InfoResponse{Message: title, Backend: backend})
	}
}
