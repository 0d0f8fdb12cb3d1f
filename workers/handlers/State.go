package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// State reports liveness. Storage being down is shown but is not an error,
// profile persistence is best-effort.
func State(w http.ResponseWriter, r *http.Request) {
	storage := "ok"
	if deps.Store == nil {
		storage = "disabled"
	} else if err := deps.Store.Ping(); err != nil {
		log.Warnf("Profile storage unreachable: %s", err)
		storage = "unavailable"
	}

	responseJSON(w, &APIStateResponse{
		Status:  "ok",
		Storage: storage,
		Flows:   deps.Flows.Len(),
	}, http.StatusOK)
}
