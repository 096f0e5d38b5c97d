package controllers

import (
	"errors"
	"net/http"
	"skilld/internal/models"
	"skilld/internal/providers"
	"skilld/internal/services"
)

const playerPathValue = "player"

// loadPlayer resolves the {player} path value. It writes the error response
// itself and reports false when the caller should stop.
func loadPlayer(w http.ResponseWriter, r *http.Request, service services.SnapshotServiceInterface, logger providers.Logger) (string, *models.Snapshot, bool) {
	id := r.PathValue(playerPathValue)
	snap, err := service.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrUnknownPlayer) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return "", nil, false
		}
		logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "Unable to load player %s: %s", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return "", nil, false
	}
	return id, snap, true
}
