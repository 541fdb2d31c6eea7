package daemon

import (
	"net/http"
	"os"
)

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		OK:      true,
		Version: a.Version,
		PID:     os.Getpid(),
	})
}
