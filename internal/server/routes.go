package server

import (
	"net/http"
)

// HandleRoutes registers the spectator endpoints on mux.
func HandleRoutes(mux *http.ServeMux, hub *Hub) {
	mux.HandleFunc("GET /ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})
	mux.HandleFunc("GET /api/state", func(w http.ResponseWriter, r *http.Request) {
		GetStateHandler(hub, w, r)
	})
}

// GetStateHandler returns the latest table snapshot as JSON.
func GetStateHandler(hub *Hub, w http.ResponseWriter, r *http.Request) {
	state, ok := hub.State()
	if !ok {
		http.Error(w, "No game state yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(state)
}
