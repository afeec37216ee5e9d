package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/folioverse-backend/catalog"
)

type healthHandler struct {
	responder   Responder
	snapshot    *catalog.Snapshot
	startupTime time.Time
}

func newHealthHandler(snapshot *catalog.Snapshot, startupTime time.Time) healthHandler {
	return healthHandler{
		responder:   NewResponder(log.With().Str("handlerName", "healthHandler").Logger()),
		snapshot:    snapshot,
		startupTime: startupTime,
	}
}

func (h healthHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, HealthResponse{
			Status:      "ok",
			StartupTime: h.startupTime,
			Uptime:      time.Since(h.startupTime).Round(time.Second).String(),
			Projects:    h.snapshot.Len(),
		})
	}
}
