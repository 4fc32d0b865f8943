package ledger

import (
	"errors"
	"testing"

	"familypoints/internal/models"
)

func TestLeaderboardStableDescending(t *testing.T) {
	seed := Seed{
		Parent: models.User{ID: "parent", Name: "Parent"},
		Kids: []models.Kid{
			{ID: "a", Name: "A", Points: 50},
			{ID: "b", Name: "B", Points: 90},
			{ID: "c", Name: "C", Points: 90},
		},
	}
	store := NewWithSeed(seed)

	board := store.Leaderboard()
	want := []string{"b", "c", "a"}
	if len(board) != len(want) {
		t.Fatalf("leaderboard length = %d, want %d", len(board), len(want))
	}
	for i, id := range want {
		if board[i].ID != id {
			t.Errorf("position %d: got %s, want %s (ties must keep list order)", i, board[i].ID, id)
		}
	}
}

func TestLeaderboardEmptyStore(t *testing.T) {
	store := New(models.User{ID: "parent", Name: "Parent"})
	if got := store.Leaderboard(); len(got) != 0 {
		t.Errorf("leaderboard of empty store has %d entries", len(got))
	}
}

func TestRewardProgress(t *testing.T) {
	store := New(models.User{ID: "parent", Name: "Parent"})
	kid, _ := store.AddKid("Sara", "👧")
	behavior, _ := store.AddBehavior("Finish homework", 20, "📚")
	reward, _ := store.AddReward("Ice cream", 40, "🍦", "")

	t.Run("zero points", func(t *testing.T) {
		progress, err := store.RewardProgress(kid.ID, reward.ID)
		if err != nil {
			t.Fatalf("RewardProgress() error: %v", err)
		}
		if progress != 0 {
			t.Errorf("progress = %v, want 0", progress)
		}
	})

	t.Run("halfway", func(t *testing.T) {
		store.AssignPoints(kid.ID, behavior.ID)
		progress, err := store.RewardProgress(kid.ID, reward.ID)
		if err != nil {
			t.Fatalf("RewardProgress() error: %v", err)
		}
		if progress != 0.5 {
			t.Errorf("progress = %v, want 0.5", progress)
		}
	})

	t.Run("capped at one", func(t *testing.T) {
		store.AssignPoints(kid.ID, behavior.ID)
		store.AssignPoints(kid.ID, behavior.ID)
		progress, err := store.RewardProgress(kid.ID, reward.ID)
		if err != nil {
			t.Fatalf("RewardProgress() error: %v", err)
		}
		if progress != 1 {
			t.Errorf("progress = %v, want 1", progress)
		}
	})

	t.Run("unknown reward", func(t *testing.T) {
		_, err := store.RewardProgress(kid.ID, "missing")
		var nferr *NotFoundError
		if !errors.As(err, &nferr) {
			t.Fatalf("RewardProgress() error = %v, want NotFoundError", err)
		}
	})

	t.Run("unknown kid", func(t *testing.T) {
		_, err := store.RewardProgress("missing", reward.ID)
		var nferr *NotFoundError
		if !errors.As(err, &nferr) {
			t.Fatalf("RewardProgress() error = %v, want NotFoundError", err)
		}
	})
}
