package domain

// User is the identity handed over by the session provider. ID is opaque:
// a UUID for first-party sessions, a Google subject for Google sign-in.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}
