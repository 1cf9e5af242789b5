// internal/domain/models/user.go
package models

import "time"

// User is a registered profile in the users collection.
//
// Field names match the documents already written by the registration
// frontend, so bson and json keys are both camelCase. The Mongo _id is
// left to the driver; ID is the public identifier.
type User struct {
	ID          string    `bson:"id" json:"id"`
	Pseudo      string    `bson:"pseudo" json:"pseudo"` // unique (uniq_users_pseudo)
	FirstName   string    `bson:"firstName" json:"firstName"`
	LastName    string    `bson:"lastName" json:"lastName"`
	Height      int       `bson:"height" json:"height"`
	DateOfBirth string    `bson:"dateOfBirth" json:"dateOfBirth"`
	Gender      string    `bson:"gender" json:"gender"`
	BodyType    string    `bson:"bodyType" json:"bodyType"`
	City        string    `bson:"city" json:"city"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserRegistration is the body of POST /api/register.
//
// Pointer fields distinguish a missing key from an empty value; every
// field must be present, but no semantic checks are applied.
type UserRegistration struct {
	Pseudo      *string `json:"pseudo" validate:"required"`
	FirstName   *string `json:"firstName" validate:"required"`
	LastName    *string `json:"lastName" validate:"required"`
	Height      *int    `json:"height" validate:"required"`
	DateOfBirth *string `json:"dateOfBirth" validate:"required"`
	Gender      *string `json:"gender" validate:"required"`
	BodyType    *string `json:"bodyType" validate:"required"`
	City        *string `json:"city" validate:"required"`
}

// ToUser copies a validated registration into a User without ID or timestamps.
func (r UserRegistration) ToUser() User {
	return User{
		Pseudo:      deref(r.Pseudo),
		FirstName:   deref(r.FirstName),
		LastName:    deref(r.LastName),
		Height:      derefInt(r.Height),
		DateOfBirth: deref(r.DateOfBirth),
		Gender:      deref(r.Gender),
		BodyType:    deref(r.BodyType),
		City:        deref(r.City),
	}
}

// CheckPseudoRequest is the body of POST /api/check-pseudo.
type CheckPseudoRequest struct {
	Pseudo *string `json:"pseudo" validate:"required"`
}

// CheckPseudoResponse reports whether a pseudo is free.
type CheckPseudoResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
