package api

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/folioverse-backend/errs"
	"github.com/rpupo63/folioverse-backend/services"
)

const maxContactBodySize = 64 * 1024

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *services.ContactService
}

func newContactHandler(service *services.ContactService) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// postContact accepts a contact form submission
func (h contactHandler) postContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			h.responder.WriteError(w, errs.NewUnsupportedMediaTypeError(r.Header.Get("Content-Type"), []string{"application/json"}))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxContactBodySize)

		var req ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(maxContactBodySize))
				return
			}
			h.logger.Debug().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		msg, err := h.service.Submit(r.Context(), req.Name, req.Email, req.Message)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ContactResponse{
			ID:          msg.ID,
			Status:      "sent",
			Message:     services.ContactSentStatus,
			SubmittedAt: msg.SubmittedAt,
		})
	}
}
