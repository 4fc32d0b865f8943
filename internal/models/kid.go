package models

import "time"

// Kid represents a tracked child profile with a point balance and history
type Kid struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Avatar        string               `json:"avatar"` // emoji or inline data URL, treated as opaque
	Points        int                  `json:"points"`
	PointHistory  []PointEvent         `json:"point_history"`
	RewardHistory []GrantedRewardEvent `json:"reward_history"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// Clone returns a deep copy of the kid including both history slices
func (k Kid) Clone() Kid {
	c := k
	c.PointHistory = make([]PointEvent, len(k.PointHistory))
	copy(c.PointHistory, k.PointHistory)
	c.RewardHistory = make([]GrantedRewardEvent, len(k.RewardHistory))
	copy(c.RewardHistory, k.RewardHistory)
	return c
}

// Viewer returns the minimal viewer projection for this kid
func (k Kid) Viewer() User {
	return User{ID: k.ID, Name: k.Name, Avatar: k.Avatar}
}
