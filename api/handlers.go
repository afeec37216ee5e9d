package api

import (
	"time"

	"github.com/rpupo63/folioverse-backend/catalog"
	"github.com/rpupo63/folioverse-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(snapshot *catalog.Snapshot, contact *services.ContactService, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(snapshot),
		contactHandler: newContactHandler(contact),
		healthHandler:  newHealthHandler(snapshot, startupTime),
	}
}
