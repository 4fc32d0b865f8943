package models

// Behavior is a catalog entry describing an action and its point delta.
// Positive points reward the action, negative points penalise it.
type Behavior struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Icon   string `json:"icon"`
}
