package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/mcqarena/internal/model"
	"gorm.io/gorm"
)

// LeaderboardRow is one ranked attempt of a test.
type LeaderboardRow struct {
	UserID      uuid.UUID
	Name        string
	Score       int
	Total       int
	Correct     int
	Wrong       int
	NotAnswered int
	SubmittedAt *time.Time
}

type ResultRepository interface {
	WithTx(tx *gorm.DB) ResultRepository
	CreateBatch(ctx context.Context, results []model.Result) error
	DeleteByAttemptIDs(ctx context.Context, attemptIDs []uuid.UUID) error
	FindByAttemptID(ctx context.Context, attemptID uuid.UUID) (*model.Result, error)
	Leaderboard(ctx context.Context, testID uuid.UUID) ([]LeaderboardRow, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) WithTx(tx *gorm.DB) ResultRepository {
	return &resultRepository{db: tx}
}

func (r *resultRepository) CreateBatch(ctx context.Context, results []model.Result) error {
	if len(results) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&results, 500).Error
}

func (r *resultRepository) DeleteByAttemptIDs(ctx context.Context, attemptIDs []uuid.UUID) error {
	if len(attemptIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("attempt_id IN ?", attemptIDs).Delete(&model.Result{}).Error
}

func (r *resultRepository) FindByAttemptID(ctx context.Context, attemptID uuid.UUID) (*model.Result, error) {
	var result model.Result
	if err := r.db.WithContext(ctx).Where("attempt_id = ?", attemptID).First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// Leaderboard ranks by score, then earliest submission. started_at only breaks exact ties so
// that the order is stable between calls.
func (r *resultRepository) Leaderboard(ctx context.Context, testID uuid.UUID) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := r.db.WithContext(ctx).Model(&model.Result{}).
		Select(`attempts.user_id AS user_id, users.name AS name,
			results.score AS score, results.total AS total, results.correct AS correct,
			results.wrong AS wrong, results.not_answered AS not_answered,
			attempts.submitted_at AS submitted_at`).
		Joins("JOIN attempts ON attempts.id = results.attempt_id").
		Joins("JOIN users ON users.id = attempts.user_id").
		Where("attempts.test_id = ?", testID).
		Order("results.score DESC, attempts.submitted_at ASC, attempts.started_at ASC").
		Scan(&rows).Error
	return rows, err
}
