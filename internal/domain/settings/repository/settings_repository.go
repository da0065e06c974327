package repository

import (
	"community_bbs/internal/domain/settings/model"
	"context"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	IncrCount(ctx context.Context, key string, delta int) error
	GetAll(ctx context.Context) ([]model.Setting, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// IncrCount 计数键不存在时以 delta 创建，存在时原子累加
func (r *settingsRepository) IncrCount(ctx context.Context, key string, delta int) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO t_settings (skey, svalue) VALUES (?, ?) "+
			"ON CONFLICT (skey) DO UPDATE SET svalue = t_settings.svalue + EXCLUDED.svalue",
		key, delta,
	).Error
}

func (r *settingsRepository) GetAll(ctx context.Context) ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.WithContext(ctx).Order("skey").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
