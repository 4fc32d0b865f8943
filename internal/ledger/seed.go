package ledger

import (
	"time"

	"familypoints/internal/models"
)

// Seed is the initial state a store is constructed with at startup
type Seed struct {
	Parent    models.User
	Kids      []models.Kid
	Behaviors []models.Behavior
	Rewards   []models.Reward
}

// DefaultSeed returns the demo family: a parent, two kids with short point
// histories, and starter behavior and reward catalogs. Every seeded balance
// equals the sum of the kid's point history.
func DefaultSeed() Seed {
	now := time.Now()

	tidy := models.Behavior{ID: newID(), Name: "Tidy the bedroom", Points: 10, Icon: "🛏️"}
	kitchen := models.Behavior{ID: newID(), Name: "Help in the kitchen", Points: 15, Icon: "🍳"}
	homework := models.Behavior{ID: newID(), Name: "Finish homework", Points: 20, Icon: "📚"}
	squabble := models.Behavior{ID: newID(), Name: "Squabbling", Points: -5, Icon: "😠"}
	notListening := models.Behavior{ID: newID(), Name: "Not listening", Points: -10, Icon: "🙅"}

	return Seed{
		Parent: models.User{ID: "parent", Name: "Parent", Avatar: "👨‍👩‍👧‍👦"},
		Kids: []models.Kid{
			{
				ID:     newID(),
				Name:   "Fatima",
				Avatar: "👧",
				Points: 40,
				PointHistory: []models.PointEvent{
					{ID: newID(), BehaviorID: homework.ID, BehaviorName: homework.Name, Points: 20, Date: now.AddDate(0, 0, -3)},
					{ID: newID(), BehaviorID: kitchen.ID, BehaviorName: kitchen.Name, Points: 15, Date: now.AddDate(0, 0, -2)},
					{ID: newID(), BehaviorID: tidy.ID, BehaviorName: tidy.Name, Points: 10, Date: now.AddDate(0, 0, -1)},
					{ID: newID(), BehaviorID: squabble.ID, BehaviorName: squabble.Name, Points: -5, Date: now},
				},
				RewardHistory: []models.GrantedRewardEvent{},
				CreatedAt:     now.AddDate(0, 0, -3),
				UpdatedAt:     now,
			},
			{
				ID:     newID(),
				Name:   "Ahmed",
				Avatar: "👦",
				Points: 25,
				PointHistory: []models.PointEvent{
					{ID: newID(), BehaviorID: kitchen.ID, BehaviorName: kitchen.Name, Points: 15, Date: now.AddDate(0, 0, -2)},
					{ID: newID(), BehaviorID: tidy.ID, BehaviorName: tidy.Name, Points: 10, Date: now.AddDate(0, 0, -1)},
				},
				RewardHistory: []models.GrantedRewardEvent{},
				CreatedAt:     now.AddDate(0, 0, -3),
				UpdatedAt:     now.AddDate(0, 0, -1),
			},
		},
		Behaviors: []models.Behavior{tidy, kitchen, homework, squabble, notListening},
		Rewards: []models.Reward{
			{ID: newID(), Name: "Extra hour of TV", Cost: 50, Icon: "📺"},
			{ID: newID(), Name: "New toy", Cost: 200, Icon: "🧸"},
			{ID: newID(), Name: "Trip to the fun park", Cost: 500, Icon: "🎢"},
			{ID: newID(), Name: "Ice cream", Cost: 30, Icon: "🍦"},
		},
	}
}
