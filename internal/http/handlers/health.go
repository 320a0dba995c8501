package handlers

import "net/http"

// Health reports fixed liveness. It does not probe the broker: orders are
// accepted with or without it.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"OK","service":"order-service"}`))
}
