package database

import (
	"errors"

	"clampacked-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepo reads and writes the key/value settings table. It implements
// state.RegionStorage.
type SettingsRepo struct {
	DB *gorm.DB
}

// LoadActiveRegion returns the persisted region id, or "" when none has been
// stored yet. Only real database failures come back as errors.
func (r *SettingsRepo) LoadActiveRegion() (string, error) {
	var setting models.Setting
	err := r.DB.Where("key = ?", models.SettingActiveRegion).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return setting.Value, nil
}

// SaveActiveRegion upserts the persisted region id.
func (r *SettingsRepo) SaveActiveRegion(id string) error {
	setting := models.Setting{Key: models.SettingActiveRegion, Value: id}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}
