package middleware

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
)

// Recover converts handler panics into a JSON 500 response instead of
// killing the connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := debug.Stack()
				log.Printf("Panic handling %s %s: %v\n%s", r.Method, r.URL.Path, rec, stack)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{
					"error": fmt.Sprintf("%v", rec),
					"stack": string(stack),
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
