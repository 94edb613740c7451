package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/mcqarena/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository interface {
	WithTx(tx *gorm.DB) AnswerRepository
	// Upsert inserts the answer or, if (attempt_id, question_id) already exists, overwrites
	// its selection and review flag in the same statement.
	Upsert(ctx context.Context, answer *model.Answer) error
	FindByAttemptIDs(ctx context.Context, attemptIDs []uuid.UUID) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) WithTx(tx *gorm.DB) AnswerRepository {
	return &answerRepository{db: tx}
}

func (r *answerRepository) Upsert(ctx context.Context, answer *model.Answer) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "attempt_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"selected_option", "marked_for_review", "updated_at"}),
	}).Create(answer).Error
}

func (r *answerRepository) FindByAttemptIDs(ctx context.Context, attemptIDs []uuid.UUID) ([]model.Answer, error) {
	var answers []model.Answer
	if len(attemptIDs) == 0 {
		return answers, nil
	}
	err := r.db.WithContext(ctx).Where("attempt_id IN ?", attemptIDs).Order("updated_at ASC").Find(&answers).Error
	return answers, err
}
