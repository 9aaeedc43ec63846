package http

import (
	"net/http"

	"github.com/virtuacademy/touchpoint/pkg/logger"
)

// RootHandler answers health probes and the API root.
type RootHandler struct {
	version string
	logger  logger.Logger
}

func NewRootHandler(version string, logger logger.Logger) *RootHandler {
	return &RootHandler{
		version: version,
		logger:  logger,
	}
}

func (h *RootHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.handleRoot)
}

func (h *RootHandler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteJSONError(w, "Not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "touchpoint",
		"version": h.version,
	})
}
