package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/virtuacademy/touchpoint/internal/domain"
	"github.com/virtuacademy/touchpoint/pkg/logger"
)

// WebhookHandler receives booking webhooks from the scheduling provider.
type WebhookHandler struct {
	service domain.WebhookServiceInterface
	logger  logger.Logger
}

func NewWebhookHandler(service domain.WebhookServiceInterface, logger logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the webhook HTTP endpoints
func (h *WebhookHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/webhooks/acuity", h.handleAcuityWebhook)
}

func (h *WebhookHandler) handleAcuityWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rawBody, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.ProcessWebhook(r.Context(), rawBody, r.Header.Get("x-acuity-signature"))
	if err != nil {
		var authErr *domain.AuthError
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &authErr):
			WriteJSONError(w, authErr.Message, http.StatusUnauthorized)
		case errors.As(err, &validationErr):
			WriteJSONError(w, validationErr.Message, http.StatusBadRequest)
		case domain.IsUpstreamError(err):
			// 5xx so the provider retries after the upstream recovers.
			h.logger.WithField("error", err.Error()).Error("Webhook upstream failure")
			WriteJSONError(w, "Upstream fetch failed", http.StatusBadGateway)
		default:
			h.logger.WithField("error", err.Error()).Error("Failed to process webhook")
			WriteJSONError(w, "Failed to process webhook", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}
