package ledger

import (
	"sort"

	"familypoints/internal/models"
)

// Leaderboard returns all kids sorted descending by points. The sort is
// stable: kids with equal points keep their original list order.
func (s *Store) Leaderboard() []models.Kid {
	kids := s.Kids()
	sort.SliceStable(kids, func(i, j int) bool {
		return kids[i].Points > kids[j].Points
	})
	return kids
}

// RewardProgress reports how close a kid is to affording a reward as a
// fraction capped at 1.0
func (s *Store) RewardProgress(kidID, rewardID string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	kid := s.findKid(kidID)
	if kid == nil {
		return 0, &NotFoundError{Kind: "kid", ID: kidID}
	}
	reward := s.findReward(rewardID)
	if reward == nil {
		return 0, &NotFoundError{Kind: "reward", ID: rewardID}
	}

	progress := float64(kid.Points) / float64(reward.Cost)
	if progress > 1 {
		progress = 1
	}
	return progress, nil
}
