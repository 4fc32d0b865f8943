package models

import "time"

// GrantOrigin distinguishes parent-initiated grants from child redemptions
type GrantOrigin string

const (
	GrantedByParent   GrantOrigin = "parent"
	GrantedByRedeemed GrantOrigin = "redeemed"
)

// PointEvent is an immutable record of a point balance change from a
// behavior assignment. Name and points are snapshotted at creation time so
// later catalog edits or deletions never alter history.
type PointEvent struct {
	ID           string    `json:"id"`
	BehaviorID   string    `json:"behavior_id"`
	BehaviorName string    `json:"behavior_name"`
	Points       int       `json:"points"`
	Date         time.Time `json:"date"`
}

// GrantedRewardEvent is an immutable record of a reward being granted or
// redeemed. Reward name and cost are snapshotted at creation time.
type GrantedRewardEvent struct {
	ID         string      `json:"id"`
	RewardID   string      `json:"reward_id"`
	RewardName string      `json:"reward_name"`
	PointCost  int         `json:"point_cost"`
	Date       time.Time   `json:"date"`
	GrantedBy  GrantOrigin `json:"granted_by"`
}
