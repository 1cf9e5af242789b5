// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/tyte/internal/app/system/httpjson"
)

// GenericServerError is the detail sent when the cause must not be exposed.
const GenericServerError = "Internal Server Error"

// Body is the error payload returned by every endpoint.
type Body struct {
	Detail string `json:"detail"`
}

// WriteDetail sends {"detail": detail} with the given status.
func WriteDetail(w http.ResponseWriter, status int, detail string) {
	httpjson.Write(w, status, Body{Detail: detail})
}

// NotFound answers unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteDetail(w, http.StatusNotFound, "Not Found")
}

// MethodNotAllowed answers known routes hit with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
