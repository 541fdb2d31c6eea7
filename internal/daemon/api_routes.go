package daemon

import "net/http"

func (a *API) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", a.Health)
	mux.HandleFunc("/v1/notes", a.NotesHandler)
	mux.HandleFunc("/v1/notes/", a.NoteByID)
	mux.HandleFunc("/v1/shutdown", a.ShutdownHandler)
}
