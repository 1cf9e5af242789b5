// Package httpjson writes JSON responses.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// Write sends v as JSON with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK sends v as JSON with status 200.
func OK(w http.ResponseWriter, v any) {
	Write(w, http.StatusOK, v)
}
