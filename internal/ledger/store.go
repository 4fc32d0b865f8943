package ledger

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"familypoints/internal/models"
)

// Store is the family ledger: the single source of truth for the parent,
// the kid list, the behavior and reward catalogs, and the active viewer.
// All mutations run to completion under one write lock, so balance and
// history changes are atomic and immediately visible to every reader.
// All reads return copies; callers never alias internal state.
type Store struct {
	mu        sync.RWMutex
	parent    models.User
	current   *models.User
	kids      []*models.Kid
	behaviors []models.Behavior
	rewards   []models.Reward
}

// New creates an empty store owned by the given parent
func New(parent models.User) *Store {
	return &Store{parent: parent}
}

// NewWithSeed creates a store pre-populated from a seed
func NewWithSeed(seed Seed) *Store {
	s := New(seed.Parent)
	for _, kid := range seed.Kids {
		k := kid.Clone()
		s.kids = append(s.kids, &k)
	}
	s.behaviors = append(s.behaviors, seed.Behaviors...)
	s.rewards = append(s.rewards, seed.Rewards...)
	return s
}

func newID() string {
	return uuid.New().String()
}

// Parent returns the parent viewer identity
func (s *Store) Parent() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parent
}

// CurrentUser returns a copy of the active viewer, or nil when logged out
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// SetCurrentUser sets the active viewer; nil means logged out
func (s *Store) SetCurrentUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		s.current = nil
		return
	}
	u := *user
	s.current = &u
}

// Kids returns deep copies of all kids in insertion order
func (s *Store) Kids() []models.Kid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	kids := make([]models.Kid, 0, len(s.kids))
	for _, k := range s.kids {
		kids = append(kids, k.Clone())
	}
	return kids
}

// Kid returns a deep copy of a single kid
func (s *Store) Kid(id string) (models.Kid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	kid := s.findKid(id)
	if kid == nil {
		return models.Kid{}, &NotFoundError{Kind: "kid", ID: id}
	}
	return kid.Clone(), nil
}

// Behaviors returns a copy of the behavior catalog
func (s *Store) Behaviors() []models.Behavior {
	s.mu.RLock()
	defer s.mu.RUnlock()
	behaviors := make([]models.Behavior, len(s.behaviors))
	copy(behaviors, s.behaviors)
	return behaviors
}

// Behavior returns a single behavior catalog entry
func (s *Store) Behavior(id string) (models.Behavior, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.behaviors {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Behavior{}, &NotFoundError{Kind: "behavior", ID: id}
}

// Rewards returns a copy of the reward catalog
func (s *Store) Rewards() []models.Reward {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rewards := make([]models.Reward, len(s.rewards))
	copy(rewards, s.rewards)
	return rewards
}

// Reward returns a single reward catalog entry
func (s *Store) Reward(id string) (models.Reward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rewards {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Reward{}, &NotFoundError{Kind: "reward", ID: id}
}

// AddKid creates a new kid with zero points and empty histories
func (s *Store) AddKid(name, avatar string) (models.Kid, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Kid{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	kid := &models.Kid{
		ID:            newID(),
		Name:          name,
		Avatar:        avatar,
		Points:        0,
		PointHistory:  []models.PointEvent{},
		RewardHistory: []models.GrantedRewardEvent{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.kids = append(s.kids, kid)

	return kid.Clone(), nil
}

// UpdateKid replaces a kid's name and avatar in place. When the edited kid
// is the active viewer, the viewer projection is updated in the same
// critical section so consumers stay consistent.
func (s *Store) UpdateKid(id, name, avatar string) (models.Kid, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Kid{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kid := s.findKid(id)
	if kid == nil {
		return models.Kid{}, &NotFoundError{Kind: "kid", ID: id}
	}

	kid.Name = name
	kid.Avatar = avatar
	kid.UpdatedAt = time.Now()

	if s.current != nil && s.current.ID == id {
		s.current.Name = name
		s.current.Avatar = avatar
	}

	return kid.Clone(), nil
}

// DeleteKid removes a kid and all of its history irreversibly. A deleted
// kid that was the active viewer is logged out in the same operation.
func (s *Store) DeleteKid(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, kid := range s.kids {
		if kid.ID == id {
			s.kids = append(s.kids[:i], s.kids[i+1:]...)
			if s.current != nil && s.current.ID == id {
				s.current = nil
			}
			return nil
		}
	}
	return &NotFoundError{Kind: "kid", ID: id}
}

// AddBehavior creates a new behavior catalog entry. Points may be positive
// or negative but never zero.
func (s *Store) AddBehavior(name string, points int, icon string) (models.Behavior, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Behavior{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if points == 0 {
		return models.Behavior{}, &ValidationError{Field: "points", Reason: "must not be zero"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	behavior := models.Behavior{
		ID:     newID(),
		Name:   name,
		Points: points,
		Icon:   icon,
	}
	s.behaviors = append(s.behaviors, behavior)

	return behavior, nil
}

// DeleteBehavior removes a behavior from the catalog. Point events that
// snapshotted it keep their name and points.
func (s *Store) DeleteBehavior(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.behaviors {
		if b.ID == id {
			s.behaviors = append(s.behaviors[:i], s.behaviors[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "behavior", ID: id}
}

// AddReward creates a new reward catalog entry with a positive point cost
func (s *Store) AddReward(name string, cost int, icon, description string) (models.Reward, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Reward{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if cost <= 0 {
		return models.Reward{}, &ValidationError{Field: "cost", Reason: "must be a positive integer"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reward := models.Reward{
		ID:          newID(),
		Name:        name,
		Cost:        cost,
		Icon:        icon,
		Description: description,
	}
	s.rewards = append(s.rewards, reward)

	return reward, nil
}

// DeleteReward removes a reward from the catalog. Granted reward events
// that snapshotted it keep their name and cost.
func (s *Store) DeleteReward(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.rewards {
		if r.ID == id {
			s.rewards = append(s.rewards[:i], s.rewards[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "reward", ID: id}
}

// AssignPoints applies a behavior to a kid: the balance moves by the
// behavior's points and a snapshotting point event is appended, atomically.
// This and RedeemReward are the only paths that change a balance.
func (s *Store) AssignPoints(kidID, behaviorID string) (models.PointEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	behavior := s.findBehavior(behaviorID)
	if behavior == nil {
		return models.PointEvent{}, &NotFoundError{Kind: "behavior", ID: behaviorID}
	}
	kid := s.findKid(kidID)
	if kid == nil {
		return models.PointEvent{}, &NotFoundError{Kind: "kid", ID: kidID}
	}

	event := models.PointEvent{
		ID:           newID(),
		BehaviorID:   behavior.ID,
		BehaviorName: behavior.Name,
		Points:       behavior.Points,
		Date:         time.Now(),
	}
	kid.Points += behavior.Points
	kid.PointHistory = append(kid.PointHistory, event)
	kid.UpdatedAt = event.Date

	return event, nil
}

// GrantReward records a parent-initiated reward grant. The catalog cost is
// historical metadata only; the kid's balance never changes. This asymmetry
// with RedeemReward is intentional product behavior: a grant is a gift, a
// redemption is a purchase.
func (s *Store) GrantReward(kidID, rewardID string) (models.GrantedRewardEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reward := s.findReward(rewardID)
	if reward == nil {
		return models.GrantedRewardEvent{}, &NotFoundError{Kind: "reward", ID: rewardID}
	}
	kid := s.findKid(kidID)
	if kid == nil {
		return models.GrantedRewardEvent{}, &NotFoundError{Kind: "kid", ID: kidID}
	}

	event := models.GrantedRewardEvent{
		ID:         newID(),
		RewardID:   reward.ID,
		RewardName: reward.Name,
		PointCost:  reward.Cost,
		Date:       time.Now(),
		GrantedBy:  models.GrantedByParent,
	}
	kid.RewardHistory = append(kid.RewardHistory, event)
	kid.UpdatedAt = event.Date

	return event, nil
}

// RedeemReward records a child redemption: the balance is debited by the
// reward cost and the event appended in the same critical section. The
// balance check happens at the moment of debit; a short balance leaves the
// store unchanged.
func (s *Store) RedeemReward(kidID, rewardID string) (models.GrantedRewardEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reward := s.findReward(rewardID)
	if reward == nil {
		return models.GrantedRewardEvent{}, &NotFoundError{Kind: "reward", ID: rewardID}
	}
	kid := s.findKid(kidID)
	if kid == nil {
		return models.GrantedRewardEvent{}, &NotFoundError{Kind: "kid", ID: kidID}
	}
	if kid.Points < reward.Cost {
		return models.GrantedRewardEvent{}, &InsufficientPointsError{
			KidID:    kidID,
			RewardID: rewardID,
			Balance:  kid.Points,
			Cost:     reward.Cost,
		}
	}

	event := models.GrantedRewardEvent{
		ID:         newID(),
		RewardID:   reward.ID,
		RewardName: reward.Name,
		PointCost:  reward.Cost,
		Date:       time.Now(),
		GrantedBy:  models.GrantedByRedeemed,
	}
	kid.Points -= reward.Cost
	kid.RewardHistory = append(kid.RewardHistory, event)
	kid.UpdatedAt = event.Date

	return event, nil
}

// findKid returns the live kid record; the caller must hold the lock
func (s *Store) findKid(id string) *models.Kid {
	for _, kid := range s.kids {
		if kid.ID == id {
			return kid
		}
	}
	return nil
}

func (s *Store) findBehavior(id string) *models.Behavior {
	for i := range s.behaviors {
		if s.behaviors[i].ID == id {
			return &s.behaviors[i]
		}
	}
	return nil
}

func (s *Store) findReward(id string) *models.Reward {
	for i := range s.rewards {
		if s.rewards[i].ID == id {
			return &s.rewards[i]
		}
	}
	return nil
}
