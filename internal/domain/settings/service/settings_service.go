package service

import (
	"community_bbs/internal/domain/settings/repository"
	"context"
)

type SettingsService interface {
	UpdateCount(ctx context.Context, kind string, delta int) error
	Counts(ctx context.Context) (map[string]int64, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) UpdateCount(ctx context.Context, kind string, delta int) error {
	return s.repo.IncrCount(ctx, kind, delta)
}

// Counts 全站统计
func (s *settingsService) Counts(ctx context.Context) (map[string]int64, error) {
	settings, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(settings))
	for _, st := range settings {
		counts[st.SKey] = st.SValue
	}
	return counts, nil
}
