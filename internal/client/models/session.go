package models

// User is the authenticated user's profile.
type User struct {
	ID    string `json:"userId"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session holds the opaque bearer token and the profile it belongs to.
// Absence of a token is the unauthenticated state; no expiry is tracked.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
