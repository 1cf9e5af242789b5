package models

// Message is the single-field body returned by the API root.
type Message struct {
	Message string `json:"message"`
}
