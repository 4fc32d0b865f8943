package models

// Reward is a catalog entry describing a redeemable item and its point cost
type Reward struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Cost        int    `json:"cost"`
	Icon        string `json:"icon"`
	Description string `json:"description,omitempty"`
}
