package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/mcqarena/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttemptRepository interface {
	WithTx(tx *gorm.DB) AttemptRepository
	Create(ctx context.Context, attempt *model.Attempt) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Attempt, error)
	// FindByIDForShare reads the attempt FOR SHARE, so it waits for an evaluation holding the
	// row FOR UPDATE and then sees its outcome (ignored by SQLite).
	FindByIDForShare(ctx context.Context, id uuid.UUID) (*model.Attempt, error)
	FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*model.Attempt, error)
	FindByTestAndUser(ctx context.Context, testID, userID uuid.UUID) (*model.Attempt, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]model.Attempt, error)
	// FindAllByTest loads every attempt of a test, oldest first. With lock set the rows are
	// held FOR UPDATE until the surrounding transaction ends (ignored by SQLite).
	FindAllByTest(ctx context.Context, testID uuid.UUID, lock bool) ([]model.Attempt, error)
	MarkSubmitted(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkAllSubmitted(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) WithTx(tx *gorm.DB) AttemptRepository {
	return &attemptRepository{db: tx}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *model.Attempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *attemptRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.WithContext(ctx).First(&attempt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByIDForShare(ctx context.Context, id uuid.UUID) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthShare}).
		First(&attempt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.WithContext(ctx).
		Preload("Answers").
		Preload("Result").
		First(&attempt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByTestAndUser(ctx context.Context, testID, userID uuid.UUID) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.WithContext(ctx).Where("test_id = ? AND user_id = ?", testID, userID).First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.WithContext(ctx).
		Preload("Result").
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindAllByTest(ctx context.Context, testID uuid.UUID, lock bool) ([]model.Attempt, error) {
	var attempts []model.Attempt
	query := r.db.WithContext(ctx).Where("test_id = ?", testID).Order("started_at ASC, id ASC")
	if lock {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}
	err := query.Find(&attempts).Error
	return attempts, err
}

// MarkSubmitted keeps the first submission time; submitting again only re-asserts the flag.
func (r *attemptRepository) MarkSubmitted(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Attempt{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_submitted": true,
			"submitted_at": gorm.Expr("COALESCE(submitted_at, ?)", at),
		}).Error
}

func (r *attemptRepository) MarkAllSubmitted(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Attempt{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"is_submitted": true,
			"submitted_at": gorm.Expr("COALESCE(submitted_at, ?)", at),
		}).Error
}
