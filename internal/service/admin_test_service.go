package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lshigami/mcqarena/internal/cache"
	"github.com/lshigami/mcqarena/internal/dto"
	"github.com/lshigami/mcqarena/internal/model"
	"github.com/lshigami/mcqarena/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminTestService is the authoring side of the catalog. Every call runs in one transaction.
type AdminTestService interface {
	CreateTest(ctx context.Context, req dto.TestCreateDTO) (*dto.TestResponseDTO, error)
	UpdateTest(ctx context.Context, testID uuid.UUID, req dto.TestUpdateDTO) (*dto.TestResponseDTO, error)
	DeleteTest(ctx context.Context, testID uuid.UUID) error
	DeleteSections(ctx context.Context, ids []uuid.UUID) (int64, error)
	DeleteQuestions(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type adminTestService struct {
	testRepo     repository.TestRepository
	sectionRepo  repository.SectionRepository
	questionRepo repository.QuestionRepository
	leaderboard  cache.LeaderboardCache
	validate     *validator.Validate
	db           *gorm.DB
}

func NewAdminTestService(
	testRepo repository.TestRepository,
	sectionRepo repository.SectionRepository,
	questionRepo repository.QuestionRepository,
	leaderboard cache.LeaderboardCache,
	db *gorm.DB,
) AdminTestService {
	return &adminTestService{
		testRepo:     testRepo,
		sectionRepo:  sectionRepo,
		questionRepo: questionRepo,
		leaderboard:  leaderboard,
		validate:     validator.New(),
		db:           db,
	}
}

func (s *adminTestService) CreateTest(ctx context.Context, req dto.TestCreateDTO) (*dto.TestResponseDTO, error) {
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}
	for _, sec := range req.Sections {
		for _, q := range sec.Questions {
			if err := checkCorrectAnswer(q.CorrectAnswer, len(q.Options)); err != nil {
				return nil, err
			}
		}
	}

	test := model.Test{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
	}
	for i, sec := range req.Sections {
		test.Sections = append(test.Sections, buildSection(sec, i))
	}

	var created *model.Test
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		testRepo := s.testRepo.WithTx(tx)
		if err := testRepo.Create(ctx, &test); err != nil {
			return fmt.Errorf("database error creating test: %w", err)
		}
		var err error
		created, err = testRepo.FindByIDWithSections(ctx, test.ID)
		return err
	})
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create test")
		return nil, err
	}

	log.Info().Str("testID", test.ID.String()).Int("sections", len(test.Sections)).Msg("Test created")
	return toTestResponse(created, true)
}

// UpdateTest applies a patch. Each nested change is either a new entity or an update of an
// existing one that must belong to this test.
func (s *adminTestService) UpdateTest(ctx context.Context, testID uuid.UUID, req dto.TestUpdateDTO) (*dto.TestResponseDTO, error) {
	if err := s.validateStruct(req); err != nil {
		return nil, err
	}
	if err := checkSectionChanges(req.Sections); err != nil {
		return nil, err
	}

	var updated *model.Test
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		testRepo := s.testRepo.WithTx(tx)
		sectionRepo := s.sectionRepo.WithTx(tx)

		if _, err := testRepo.FindByID(ctx, testID); err != nil {
			return notFound(err, "test")
		}

		fields := map[string]interface{}{}
		if req.Title != nil {
			fields["title"] = *req.Title
		}
		if req.Description != nil {
			fields["description"] = *req.Description
		}
		if req.Duration != nil {
			fields["duration"] = *req.Duration
		}
		if err := testRepo.Update(ctx, testID, fields); err != nil {
			return fmt.Errorf("update test: %w", err)
		}

		next, err := sectionRepo.NextPosition(ctx, testID)
		if err != nil {
			return fmt.Errorf("next section position: %w", err)
		}
		for _, change := range req.Sections {
			if change.New != nil {
				section := buildSection(*change.New, next)
				section.TestID = testID
				next++
				if err := sectionRepo.Create(ctx, &section); err != nil {
					return fmt.Errorf("create section: %w", err)
				}
				continue
			}
			if err := s.applySectionUpdate(ctx, tx, testID, *change.Update); err != nil {
				return err
			}
		}

		updated, err = testRepo.FindByIDWithSections(ctx, testID)
		return err
	})
	if err != nil {
		if !isDomainError(err) {
			log.Error().Err(err).Str("testID", testID.String()).Msg("Failed to update test")
		}
		return nil, err
	}

	log.Info().Str("testID", testID.String()).Int("sectionChanges", len(req.Sections)).Msg("Test updated")
	return toTestResponse(updated, true)
}

func (s *adminTestService) applySectionUpdate(ctx context.Context, tx *gorm.DB, testID uuid.UUID, upd dto.SectionUpdateDTO) error {
	sectionRepo := s.sectionRepo.WithTx(tx)
	questionRepo := s.questionRepo.WithTx(tx)

	if _, err := sectionRepo.FindByIDForTest(ctx, upd.ID, testID); err != nil {
		return notFound(err, "section "+upd.ID.String())
	}

	fields := map[string]interface{}{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Duration != nil {
		fields["duration"] = *upd.Duration
	}
	if err := sectionRepo.Update(ctx, upd.ID, fields); err != nil {
		return fmt.Errorf("update section: %w", err)
	}

	next, err := questionRepo.NextPosition(ctx, upd.ID)
	if err != nil {
		return fmt.Errorf("next question position: %w", err)
	}
	for _, change := range upd.Questions {
		if change.New != nil {
			q := buildQuestion(*change.New, next)
			q.SectionID = upd.ID
			next++
			if err := questionRepo.Create(ctx, &q); err != nil {
				return fmt.Errorf("create question: %w", err)
			}
			continue
		}

		qu := change.Update
		existing, err := questionRepo.FindByIDForSection(ctx, qu.ID, upd.ID)
		if err != nil {
			return notFound(err, "question "+qu.ID.String())
		}

		fields := map[string]interface{}{}
		optionCount := len(existing.Options)
		if qu.Text != nil {
			fields["text"] = *qu.Text
		}
		if qu.Options != nil {
			if len(qu.Options) < 2 {
				return fmt.Errorf("%w: question %s needs at least 2 options", ErrInvalidInput, qu.ID)
			}
			fields["options"] = datatypes.JSONSlice[string](qu.Options)
			optionCount = len(qu.Options)
		}
		correct := existing.CorrectAnswer
		switch {
		case qu.ClearCorrectAnswer:
			fields["correct_answer"] = nil
			correct = nil
		case qu.CorrectAnswer != nil:
			fields["correct_answer"] = *qu.CorrectAnswer
			correct = qu.CorrectAnswer
		}
		if err := checkCorrectAnswer(correct, optionCount); err != nil {
			return fmt.Errorf("question %s: %w", qu.ID, err)
		}
		if err := questionRepo.Update(ctx, qu.ID, fields); err != nil {
			return fmt.Errorf("update question: %w", err)
		}
	}
	return nil
}

func (s *adminTestService) DeleteTest(ctx context.Context, testID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deleted, err := s.testRepo.WithTx(tx).Delete(ctx, testID)
		if err != nil {
			return fmt.Errorf("delete test: %w", err)
		}
		if !deleted {
			return fmt.Errorf("test: %w", ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if !isDomainError(err) {
			log.Error().Err(err).Str("testID", testID.String()).Msg("Failed to delete test")
		}
		return err
	}
	if err := s.leaderboard.Invalidate(ctx, testID); err != nil {
		log.Warn().Err(err).Str("testID", testID.String()).Msg("DeleteTest: failed to invalidate leaderboard cache")
	}
	log.Info().Str("testID", testID.String()).Msg("Test deleted")
	return nil
}

func (s *adminTestService) DeleteSections(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: no section ids given", ErrInvalidInput)
	}
	var n int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		n, err = s.sectionRepo.WithTx(tx).DeleteByIDs(ctx, ids)
		return err
	})
	if err != nil {
		log.Error().Err(err).Int("count", len(ids)).Msg("Failed to delete sections")
		return 0, fmt.Errorf("delete sections: %w", err)
	}
	return n, nil
}

func (s *adminTestService) DeleteQuestions(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: no question ids given", ErrInvalidInput)
	}
	var n int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		n, err = s.questionRepo.WithTx(tx).DeleteByIDs(ctx, ids)
		return err
	})
	if err != nil {
		log.Error().Err(err).Int("count", len(ids)).Msg("Failed to delete questions")
		return 0, fmt.Errorf("delete questions: %w", err)
	}
	return n, nil
}

func (s *adminTestService) validateStruct(v interface{}) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

// checkSectionChanges enforces that every nested change picks exactly one of new/update.
func checkSectionChanges(changes []dto.SectionChangeDTO) error {
	for i, c := range changes {
		if (c.New == nil) == (c.Update == nil) {
			return fmt.Errorf("%w: sections[%d] must set exactly one of new or update", ErrInvalidInput, i)
		}
		if c.New != nil {
			for _, q := range c.New.Questions {
				if err := checkCorrectAnswer(q.CorrectAnswer, len(q.Options)); err != nil {
					return err
				}
			}
			continue
		}
		for j, qc := range c.Update.Questions {
			if (qc.New == nil) == (qc.Update == nil) {
				return fmt.Errorf("%w: sections[%d].questions[%d] must set exactly one of new or update", ErrInvalidInput, i, j)
			}
			if qc.New != nil {
				if err := checkCorrectAnswer(qc.New.CorrectAnswer, len(qc.New.Options)); err != nil {
					return err
				}
			} else if qc.Update.ClearCorrectAnswer && qc.Update.CorrectAnswer != nil {
				return fmt.Errorf("%w: sections[%d].questions[%d] sets and clears correct_answer", ErrInvalidInput, i, j)
			}
		}
	}
	return nil
}

func checkCorrectAnswer(correct *int, optionCount int) error {
	if correct != nil && (*correct < 0 || *correct >= optionCount) {
		return fmt.Errorf("%w: correct_answer %d is outside the %d options", ErrInvalidInput, *correct, optionCount)
	}
	return nil
}

func buildSection(req dto.SectionCreateDTO, position int) model.Section {
	section := model.Section{
		Name:     req.Name,
		Duration: req.Duration,
		Position: position,
	}
	for i, q := range req.Questions {
		section.Questions = append(section.Questions, buildQuestion(q, i))
	}
	return section
}

func buildQuestion(req dto.QuestionCreateDTO, position int) model.Question {
	return model.Question{
		Text:          req.Text,
		Options:       datatypes.JSONSlice[string](req.Options),
		CorrectAnswer: req.CorrectAnswer,
		Position:      position,
	}
}
