package postgres

import (
	"fmt"

	"github.com/jordanwhite/dailydo/internal/constants"
	"github.com/jordanwhite/dailydo/internal/models"
)

func defaultSettings() models.Settings {
	return models.Settings{
		Timezone:             constants.DefaultTimezone,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		TickIntervalSec:      constants.DefaultTickIntervalSec,
	}
}

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingTickIntervalSec:
			if _, err := fmt.Sscanf(value, "%d", &settings.TickIntervalSec); err != nil {
				return models.Settings{}, fmt.Errorf("parsing tick_interval_sec: %w", err)
			}
		case constants.SettingWhatsAppEnabled:
			settings.WhatsAppEnabled = value == "true"
		case constants.SettingWhatsAppPhone:
			settings.WhatsAppPhone = value
		}
		count++
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(constants.SettingTimezone, settings.Timezone); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingNotificationsEnabled, fmt.Sprintf("%v", settings.NotificationsEnabled)); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingTickIntervalSec, fmt.Sprintf("%d", settings.TickIntervalSec)); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingWhatsAppEnabled, fmt.Sprintf("%v", settings.WhatsAppEnabled)); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingWhatsAppPhone, settings.WhatsAppPhone); err != nil {
		return err
	}

	return tx.Commit()
}
