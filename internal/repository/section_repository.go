package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/mcqarena/internal/model"
	"gorm.io/gorm"
)

type SectionRepository interface {
	WithTx(tx *gorm.DB) SectionRepository
	Create(ctx context.Context, section *model.Section) error
	FindByIDForTest(ctx context.Context, id, testID uuid.UUID) (*model.Section, error)
	// NextPosition is one past the highest position in the test, 0 for an empty test.
	NextPosition(ctx context.Context, testID uuid.UUID) (int, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type sectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func (r *sectionRepository) WithTx(tx *gorm.DB) SectionRepository {
	return &sectionRepository{db: tx}
}

func (r *sectionRepository) Create(ctx context.Context, section *model.Section) error {
	return r.db.WithContext(ctx).Create(section).Error
}

func (r *sectionRepository) FindByIDForTest(ctx context.Context, id, testID uuid.UUID) (*model.Section, error) {
	var section model.Section
	if err := r.db.WithContext(ctx).Where("id = ? AND test_id = ?", id, testID).First(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepository) NextPosition(ctx context.Context, testID uuid.UUID) (int, error) {
	var next int
	err := r.db.WithContext(ctx).Model(&model.Section{}).
		Select("COALESCE(MAX(position), -1) + 1").
		Where("test_id = ?", testID).
		Scan(&next).Error
	return next, err
}

func (r *sectionRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Section{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteByIDs removes the sections with their questions and any answers to those questions.
func (r *sectionRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	db := r.db.WithContext(ctx)
	questionIDs := db.Model(&model.Question{}).Select("id").Where("section_id IN ?", ids)
	if err := db.Where("question_id IN (?)", questionIDs).Delete(&model.Answer{}).Error; err != nil {
		return 0, err
	}
	if err := db.Where("section_id IN ?", ids).Delete(&model.Question{}).Error; err != nil {
		return 0, err
	}
	res := db.Where("id IN ?", ids).Delete(&model.Section{})
	return res.RowsAffected, res.Error
}
