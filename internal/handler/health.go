package handler

import "net/http"

// HandleHealth responds to the root health probe.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Feedback Intelligence API",
		"version": "1.0.0",
		"status":  "healthy",
	})
}

// HandleNotFound is the JSON fallback for unknown routes.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}
