package models

import "time"

// SettingActiveRegion is the settings key under which the chosen region id is
// persisted. It is the only durable piece of app state.
const SettingActiveRegion = "active_region"

// Setting is a single key/value settings row.
type Setting struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
