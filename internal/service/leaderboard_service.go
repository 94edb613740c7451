package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/mcqarena/internal/cache"
	"github.com/lshigami/mcqarena/internal/dto"
	"github.com/lshigami/mcqarena/internal/repository"
	"github.com/rs/zerolog/log"
)

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, testID uuid.UUID) ([]dto.RankRowDTO, error)
}

type leaderboardService struct {
	resultRepo repository.ResultRepository
	cache      cache.LeaderboardCache
}

func NewLeaderboardService(resultRepo repository.ResultRepository, leaderboardCache cache.LeaderboardCache) LeaderboardService {
	return &leaderboardService{resultRepo: resultRepo, cache: leaderboardCache}
}

// GetLeaderboard ranks every evaluated attempt of a test: score descending, then earliest
// submission. Rank is the 1-based position; equal scores still get distinct ranks.
func (s *leaderboardService) GetLeaderboard(ctx context.Context, testID uuid.UUID) ([]dto.RankRowDTO, error) {
	cached, hit, err := s.cache.Get(ctx, testID)
	if err != nil {
		log.Warn().Err(err).Str("testID", testID.String()).Msg("GetLeaderboard: cache read failed")
	}
	if hit {
		return cached, nil
	}
	generation, genErr := s.cache.Generation(ctx, testID)
	if genErr != nil {
		log.Warn().Err(genErr).Str("testID", testID.String()).Msg("GetLeaderboard: cache generation read failed")
	}

	rows, err := s.resultRepo.Leaderboard(ctx, testID)
	if err != nil {
		log.Error().Err(err).Str("testID", testID.String()).Msg("GetLeaderboard: repository error")
		return nil, fmt.Errorf("error fetching leaderboard: %w", err)
	}

	ranked := make([]dto.RankRowDTO, 0, len(rows))
	if len(rows) > 0 {
		if err := copier.Copy(&ranked, &rows); err != nil {
			return nil, fmt.Errorf("error preparing leaderboard response: %w", err)
		}
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	if genErr != nil {
		return ranked, nil
	}
	if err := s.cache.Set(ctx, testID, generation, ranked); err != nil {
		log.Warn().Err(err).Str("testID", testID.String()).Msg("GetLeaderboard: cache write failed")
	}
	return ranked, nil
}
