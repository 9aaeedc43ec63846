package http

import (
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/virtuacademy/touchpoint/internal/domain"
	"github.com/virtuacademy/touchpoint/internal/service/queue"
	"github.com/virtuacademy/touchpoint/pkg/logger"
)

// DeliveryHandler is the QStash callback endpoint that drains pending
// deliveries for one canonical event.
type DeliveryHandler struct {
	service  domain.DeliveryServiceInterface
	receiver *queue.Receiver
	logger   logger.Logger
}

func NewDeliveryHandler(service domain.DeliveryServiceInterface, receiver *queue.Receiver, logger logger.Logger) *DeliveryHandler {
	return &DeliveryHandler{
		service:  service,
		receiver: receiver,
		logger:   logger,
	}
}

// RegisterRoutes registers the delivery HTTP endpoints
func (h *DeliveryHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/qstash/deliver", h.handleDeliver)
}

func (h *DeliveryHandler) handleDeliver(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rawBody, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	if err := h.receiver.Verify(r.Header.Get("Upstash-Signature"), rawBody); err != nil {
		h.logger.WithField("error", err.Error()).Warn("Rejected delivery callback")
		WriteJSONError(w, "Invalid signature", http.StatusUnauthorized)
		return
	}

	canonicalEventID := gjson.GetBytes(rawBody, "canonicalEventId").String()
	if canonicalEventID == "" {
		WriteJSONError(w, "Missing canonicalEventId", http.StatusBadRequest)
		return
	}

	if err := h.service.ProcessEvent(r.Context(), canonicalEventID); err != nil {
		if domain.IsNotFound(err) {
			WriteJSONError(w, "Event not found", http.StatusNotFound)
			return
		}
		h.logger.WithFields(map[string]interface{}{
			"canonical_event_id": canonicalEventID,
			"error":              err.Error(),
		}).Error("Failed to process deliveries")
		WriteJSONError(w, "Failed to process deliveries", http.StatusInternalServerError)
		return
	}

	// Per-platform failures are recorded on their delivery rows, not
	// surfaced here. A 200 stops QStash from re-posting the whole batch.
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
