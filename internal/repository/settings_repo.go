package repository

import (
	"database/sql"
	"errors"

	"familypoints/internal/database"
)

// SettingsRepository persists cross-session key-value settings. It is the
// only durable state in the application; ledger entities live in memory.
type SettingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSetting retrieves a setting value by name
func (r *SettingsRepository) GetSetting(name string) (string, error) {
	var value string
	query := `SELECT value FROM settings WHERE name = ?`
	err := r.db.QueryRow(query, name).Scan(&value)
	return value, err
}

// SetSetting updates or inserts a setting
func (r *SettingsRepository) SetSetting(name, value string) error {
	query := r.db.Dialect.UpsertSetting()
	_, err := r.db.Exec(query, name, value)
	return err
}

// WelcomeSeen reports whether the welcome screen has been shown before.
// A missing row means a first visit.
func (r *SettingsRepository) WelcomeSeen() (bool, error) {
	value, err := r.GetSetting("welcome_seen")
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value == "true", nil
}

// SetWelcomeSeen records whether the welcome screen has been shown
func (r *SettingsRepository) SetWelcomeSeen(seen bool) error {
	value := "false"
	if seen {
		value = "true"
	}
	return r.SetSetting("welcome_seen", value)
}
