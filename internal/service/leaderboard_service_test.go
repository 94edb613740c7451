package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/mcqarena/internal/dto"
	"github.com/lshigami/mcqarena/internal/model"
	"github.com/lshigami/mcqarena/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLeaderboard_Ordering(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testID, _ := f.testWithKey(t, intPtr(0))
	at := func(h, m int) time.Time { return time.Date(2024, 5, 1, h, m, 0, 0, time.UTC) }

	entries := []struct {
		name      string
		score     int
		submitted time.Time
	}{
		{"late80", 80, at(10, 5)},
		{"early80", 80, at(10, 1)},
		{"top90", 90, at(10, 10)},
	}
	for _, e := range entries {
		p := f.user(t, e.name, model.RoleStudent)
		submitted := e.submitted
		attempt := model.Attempt{TestID: testID, UserID: p.UserID, StartedAt: at(9, 0), SubmittedAt: &submitted, IsSubmitted: true}
		require.NoError(t, f.db.Create(&attempt).Error)
		require.NoError(t, f.db.Create(&model.Result{AttemptID: attempt.ID, Score: e.score, Total: 100, Correct: e.score, Wrong: 100 - e.score}).Error)
	}
	// An attempt without a result is not ranked.
	loner := f.user(t, "loner", model.RoleStudent)
	require.NoError(t, f.db.Create(&model.Attempt{TestID: testID, UserID: loner.UserID}).Error)

	board, err := f.leaderboard.GetLeaderboard(ctx, testID)
	require.NoError(t, err)
	require.Len(t, board, 3)

	got := make([]string, len(board))
	for i, row := range board {
		got[i] = row.Name
		assert.Equal(t, i+1, row.Rank)
	}
	assert.Equal(t, []string{"top90", "early80", "late80"}, got)
	assert.Equal(t, 90, board[0].Score)
	require.NotNil(t, board[1].SubmittedAt)
	assert.True(t, at(10, 1).Equal(*board[1].SubmittedAt))
}

func TestGetLeaderboard_EmptyAndCached(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	testID := uuid.New()

	board, err := f.leaderboard.GetLeaderboard(ctx, testID)
	require.NoError(t, err)
	assert.NotNil(t, board)
	assert.Empty(t, board)

	cached := []dto.RankRowDTO{{Rank: 1, Name: "from cache", Score: 7}}
	require.NoError(t, f.cache.Set(ctx, testID, 0, cached))

	board, err = f.leaderboard.GetLeaderboard(ctx, testID)
	require.NoError(t, err)
	assert.Equal(t, cached, board)
	assert.Equal(t, 1, f.cache.hits)
}

// evaluatingResultRepo lets an evaluation commit while a leaderboard read is in flight.
type evaluatingResultRepo struct {
	repository.ResultRepository
	during func()
}

func (r evaluatingResultRepo) Leaderboard(ctx context.Context, testID uuid.UUID) ([]repository.LeaderboardRow, error) {
	rows, err := r.ResultRepository.Leaderboard(ctx, testID)
	r.during()
	return rows, err
}

func TestGetLeaderboard_DoesNotCacheRowsReadBeforeInvalidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := newScenario(t, f)

	repo := evaluatingResultRepo{
		ResultRepository: repository.NewResultRepository(f.db),
		during: func() {
			_, err := f.evaluation.EvaluateTest(ctx, s.testID)
			require.NoError(t, err)
		},
	}
	svc := NewLeaderboardService(repo, f.cache)

	// The read started before any result existed.
	board, err := svc.GetLeaderboard(ctx, s.testID)
	require.NoError(t, err)
	assert.Empty(t, board)
	_, cached, _ := f.cache.Get(ctx, s.testID)
	assert.False(t, cached)

	board, err = f.leaderboard.GetLeaderboard(ctx, s.testID)
	require.NoError(t, err)
	assert.Len(t, board, 2)
}
