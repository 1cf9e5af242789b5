// internal/domain/models/statuscheck.go
package models

import "time"

// StatusCheck is a liveness ping stored in status_checks.
type StatusCheck struct {
	ID         string    `bson:"id" json:"id"`
	ClientName string    `bson:"client_name" json:"client_name"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

// StatusCheckCreate is the body of POST /api/status.
type StatusCheckCreate struct {
	ClientName *string `json:"client_name" validate:"required"`
}
