package models

// User is the minimal viewer identity: the parent, or a kid acting as itself
// after login. It is a projection, not the full Kid record.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
