package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/mcqarena/internal/dto"
	"github.com/lshigami/mcqarena/internal/model"
	"github.com/lshigami/mcqarena/internal/repository"
	"github.com/rs/zerolog/log"
)

// UserTestService is the read side of the test catalog.
type UserTestService interface {
	GetAllTests(ctx context.Context) ([]dto.TestSummaryDTO, error)
	GetTestDetails(ctx context.Context, testID uuid.UUID, caller Principal) (*dto.TestResponseDTO, error)
}

type userTestService struct {
	testRepo repository.TestRepository
}

func NewUserTestService(testRepo repository.TestRepository) UserTestService {
	return &userTestService{testRepo: testRepo}
}

func (s *userTestService) GetAllTests(ctx context.Context) ([]dto.TestSummaryDTO, error) {
	summaries, err := s.testRepo.FindAllWithCounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all tests with counts from repository")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}

	dtos := make([]dto.TestSummaryDTO, 0, len(summaries))
	for _, ts := range summaries {
		dtos = append(dtos, dto.TestSummaryDTO{
			ID:            ts.Test.ID,
			Title:         ts.Test.Title,
			Description:   ts.Test.Description,
			Duration:      ts.Test.Duration,
			SectionCount:  ts.SectionCount,
			QuestionCount: ts.QuestionCount,
			CreatedAt:     ts.Test.CreatedAt,
		})
	}
	return dtos, nil
}

// GetTestDetails returns the full test. The answer key is only included for admins.
func (s *userTestService) GetTestDetails(ctx context.Context, testID uuid.UUID, caller Principal) (*dto.TestResponseDTO, error) {
	test, err := s.testRepo.FindByIDWithSections(ctx, testID)
	if err != nil {
		err = notFound(err, "test")
		if !isDomainError(err) {
			log.Error().Err(err).Str("testID", testID.String()).Msg("Failed to get test details from repository")
		}
		return nil, err
	}
	return toTestResponse(test, caller.IsAdmin())
}

func toTestResponse(test *model.Test, withKey bool) (*dto.TestResponseDTO, error) {
	var resp dto.TestResponseDTO
	if err := copier.Copy(&resp, test); err != nil {
		log.Error().Err(err).Msg("Failed to copy Test model to TestResponseDTO")
		return nil, fmt.Errorf("error preparing test details response: %w", err)
	}
	if resp.Sections == nil {
		resp.Sections = []dto.SectionResponseDTO{}
	}
	for i := range resp.Sections {
		if resp.Sections[i].Questions == nil {
			resp.Sections[i].Questions = []dto.QuestionResponseDTO{}
		}
		if withKey {
			continue
		}
		for j := range resp.Sections[i].Questions {
			resp.Sections[i].Questions[j].CorrectAnswer = nil
		}
	}
	return &resp, nil
}
