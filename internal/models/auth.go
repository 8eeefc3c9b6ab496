package models

// Credentials is the login request body.
type Credentials struct {
	Login    *string `json:"login"`
	Password *string `json:"password"`
}
