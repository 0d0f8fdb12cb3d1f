package handlers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// requests without this header act as the shared guest user
const UserHeader = "X-User-ID"

const guestUser = "guest"

func responseJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("Error writing response: %s", err)
	}
}

func responseError(w http.ResponseWriter, field, message string, code int) {
	responseJSON(w, &APIResponse{
		Status:  "error",
		Field:   field,
		Message: message,
	}, code)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Debugf("Error unmarshalling request body: %s", err)
		responseError(w, "", "Cannot unmarshal input JSON", http.StatusBadRequest)
		return false
	}
	return true
}

func requestUser(r *http.Request) string {
	if user := r.Header.Get(UserHeader); user != "" {
		return user
	}
	return guestUser
}
