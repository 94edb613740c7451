package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/mcqarena/internal/model"
	"gorm.io/gorm"
)

// KeyRow is one entry of a test's answer key.
type KeyRow struct {
	QuestionID    uuid.UUID
	CorrectAnswer *int
}

type QuestionRepository interface {
	WithTx(tx *gorm.DB) QuestionRepository
	Create(ctx context.Context, question *model.Question) error
	CreateBatch(ctx context.Context, questions []model.Question) error
	FindByIDForSection(ctx context.Context, id, sectionID uuid.UUID) (*model.Question, error)
	FindByIDForTest(ctx context.Context, id, testID uuid.UUID) (*model.Question, error)
	AnswerKeyForTest(ctx context.Context, testID uuid.UUID) ([]KeyRow, error)
	NextPosition(ctx context.Context, sectionID uuid.UUID) (int, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) WithTx(tx *gorm.DB) QuestionRepository {
	return &questionRepository{db: tx}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) CreateBatch(ctx context.Context, questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&questions).Error
}

func (r *questionRepository) FindByIDForSection(ctx context.Context, id, sectionID uuid.UUID) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).Where("id = ? AND section_id = ?", id, sectionID).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// FindByIDForTest returns the question only if it sits in a section of testID.
func (r *questionRepository) FindByIDForTest(ctx context.Context, id, testID uuid.UUID) (*model.Question, error) {
	var question model.Question
	err := r.db.WithContext(ctx).
		Joins("JOIN sections ON sections.id = questions.section_id").
		Where("questions.id = ? AND sections.test_id = ?", id, testID).
		First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) AnswerKeyForTest(ctx context.Context, testID uuid.UUID) ([]KeyRow, error) {
	var rows []KeyRow
	err := r.db.WithContext(ctx).Model(&model.Question{}).
		Select("questions.id AS question_id, questions.correct_answer AS correct_answer").
		Joins("JOIN sections ON sections.id = questions.section_id").
		Where("sections.test_id = ?", testID).
		Order("sections.position ASC, sections.id ASC, questions.position ASC, questions.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *questionRepository) NextPosition(ctx context.Context, sectionID uuid.UUID) (int, error) {
	var next int
	err := r.db.WithContext(ctx).Model(&model.Question{}).
		Select("COALESCE(MAX(position), -1) + 1").
		Where("section_id = ?", sectionID).
		Scan(&next).Error
	return next, err
}

func (r *questionRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Question{}).Where("id = ?", id).Updates(fields).Error
}

func (r *questionRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	db := r.db.WithContext(ctx)
	if err := db.Where("question_id IN ?", ids).Delete(&model.Answer{}).Error; err != nil {
		return 0, err
	}
	res := db.Where("id IN ?", ids).Delete(&model.Question{})
	return res.RowsAffected, res.Error
}
