package dto

// InsertResponse mirrors the store's insert-one acknowledgement shape the
// frontend consumes.
type InsertResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// MessageResponse is a generic message envelope.
type MessageResponse struct {
	Message string `json:"message"`
}
