package http

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body shape of every response.
type Envelope struct {
	Success    bool `json:"success"`
	StatusCode int  `json:"statusCode"`
	Body       any  `json:"body"`
}

// Message is the body used for plain text outcomes.
type Message struct {
	Text string `json:"text"`
}

func writeEnvelope(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{
		Success:    status < http.StatusBadRequest,
		StatusCode: status,
		Body:       body,
	})
}

func ok(w http.ResponseWriter, body any) {
	writeEnvelope(w, http.StatusOK, body)
}

func fail(w http.ResponseWriter, status int, text string) {
	writeEnvelope(w, status, Message{Text: text})
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeEnvelope(w, http.StatusNotFound, "Not found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	fail(w, http.StatusMethodNotAllowed, "Method not allowed")
}
