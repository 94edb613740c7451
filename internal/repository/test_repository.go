package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/mcqarena/internal/model"
	"gorm.io/gorm"
)

// TestSummary is a test row plus the size of its content.
type TestSummary struct {
	model.Test
	SectionCount  int
	QuestionCount int
}

type TestRepository interface {
	WithTx(tx *gorm.DB) TestRepository
	Create(ctx context.Context, test *model.Test) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Test, error)
	FindByIDWithSections(ctx context.Context, id uuid.UUID) (*model.Test, error)
	FindAllWithCounts(ctx context.Context) ([]TestSummary, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) WithTx(tx *gorm.DB) TestRepository {
	return &testRepository{db: tx}
}

func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	// Sections and their questions are created through the association.
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Test, error) {
	var test model.Test
	if err := r.db.WithContext(ctx).First(&test, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByIDWithSections(ctx context.Context, id uuid.UUID) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sections.position ASC, sections.created_at ASC, sections.id ASC")
		}).
		Preload("Sections.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC, questions.created_at ASC, questions.id ASC")
		}).
		First(&test, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindAllWithCounts(ctx context.Context) ([]TestSummary, error) {
	var results []TestSummary
	err := r.db.WithContext(ctx).Model(&model.Test{}).
		Select(`tests.*,
			(SELECT COUNT(*) FROM sections WHERE sections.test_id = tests.id) AS section_count,
			(SELECT COUNT(*) FROM questions JOIN sections ON sections.id = questions.section_id WHERE sections.test_id = tests.id) AS question_count`).
		Order("tests.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *testRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Test{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes the test and everything hanging off it, children first. Callers should
// run it inside a transaction. It reports false when no test matched.
func (r *testRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	db := r.db.WithContext(ctx)
	attemptIDs := func() *gorm.DB { return db.Model(&model.Attempt{}).Select("id").Where("test_id = ?", id) }
	sectionIDs := func() *gorm.DB { return db.Model(&model.Section{}).Select("id").Where("test_id = ?", id) }
	questionIDs := func() *gorm.DB {
		return db.Model(&model.Question{}).Select("id").Where("section_id IN (?)", sectionIDs())
	}

	steps := []func() error{
		func() error { return db.Where("attempt_id IN (?)", attemptIDs()).Delete(&model.Result{}).Error },
		func() error { return db.Where("attempt_id IN (?)", attemptIDs()).Delete(&model.Answer{}).Error },
		func() error { return db.Where("question_id IN (?)", questionIDs()).Delete(&model.Answer{}).Error },
		func() error { return db.Where("test_id = ?", id).Delete(&model.Attempt{}).Error },
		func() error { return db.Where("section_id IN (?)", sectionIDs()).Delete(&model.Question{}).Error },
		func() error { return db.Where("test_id = ?", id).Delete(&model.Section{}).Error },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return false, err
		}
	}
	res := db.Where("id = ?", id).Delete(&model.Test{})
	return res.RowsAffected > 0, res.Error
}
