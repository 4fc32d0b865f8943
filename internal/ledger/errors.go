package ledger

import "fmt"

// ValidationError reports input that fails the store's shape checks, such as
// an empty name or a non-positive reward cost.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a referenced id that is absent from its catalog or
// list. Kind names the entity kind ("kid", "behavior", "reward").
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// InsufficientPointsError reports a redemption attempted with a balance
// below the reward cost. The store state is unchanged when this is returned.
type InsufficientPointsError struct {
	KidID    string
	RewardID string
	Balance  int
	Cost     int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("kid %s has %d points, reward %s costs %d", e.KidID, e.Balance, e.RewardID, e.Cost)
}
