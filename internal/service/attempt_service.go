package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/mcqarena/database"
	"github.com/lshigami/mcqarena/internal/dto"
	"github.com/lshigami/mcqarena/internal/model"
	"github.com/lshigami/mcqarena/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptService owns the attempt state machine and answer recording.
type AttemptService interface {
	StartAttempt(ctx context.Context, testID uuid.UUID, caller Principal) (*dto.AttemptResponseDTO, error)
	SaveAnswer(ctx context.Context, attemptID uuid.UUID, req dto.SaveAnswerRequest, caller Principal) (bool, error)
	SubmitAttempt(ctx context.Context, attemptID uuid.UUID, caller Principal) (bool, error)
	GetAttempt(ctx context.Context, attemptID uuid.UUID, caller Principal) (*dto.AttemptResponseDTO, error)
	ListMyAttempts(ctx context.Context, caller Principal) ([]dto.AttemptResponseDTO, error)
}

type attemptService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	answerRepo   repository.AnswerRepository
	db           *gorm.DB
	now          func() time.Time
}

func NewAttemptService(
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AnswerRepository,
	db *gorm.DB,
) AttemptService {
	return &attemptService{
		testRepo:     testRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		answerRepo:   answerRepo,
		db:           db,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// StartAttempt creates the caller's only attempt at a test. The unique index on
// (test_id, user_id) is the real guard; the lookup just gives the common case a clean error.
func (s *attemptService) StartAttempt(ctx context.Context, testID uuid.UUID, caller Principal) (*dto.AttemptResponseDTO, error) {
	if _, err := s.testRepo.FindByID(ctx, testID); err != nil {
		return nil, notFound(err, "test")
	}

	existing, err := s.attemptRepo.FindByTestAndUser(ctx, testID, caller.UserID)
	if err == nil && existing != nil {
		return nil, ErrAlreadyStarted
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Str("testID", testID.String()).Msg("StartAttempt: lookup failed")
		return nil, fmt.Errorf("lookup attempt: %w", err)
	}

	attempt := model.Attempt{
		TestID:      testID,
		UserID:      caller.UserID,
		StartedAt:   s.now(),
		IsSubmitted: false,
	}
	if err := s.attemptRepo.Create(ctx, &attempt); err != nil {
		if database.IsUniqueViolation(err) {
			log.Info().Str("testID", testID.String()).Str("userID", caller.UserID.String()).Msg("StartAttempt: concurrent start rejected by unique index")
			return nil, ErrAlreadyStarted
		}
		log.Error().Err(err).Str("testID", testID.String()).Msg("StartAttempt: failed to create attempt")
		return nil, fmt.Errorf("create attempt: %w", err)
	}

	log.Info().Str("attemptID", attempt.ID.String()).Str("testID", testID.String()).Str("userID", caller.UserID.String()).Msg("Attempt started")
	return toAttemptDTO(&attempt, false), nil
}

// SaveAnswer upserts the caller's selection for one question while the attempt is open.
func (s *attemptService) SaveAnswer(ctx context.Context, attemptID uuid.UUID, req dto.SaveAnswerRequest, caller Principal) (bool, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempt, err := s.attemptRepo.WithTx(tx).FindByIDForShare(ctx, attemptID)
		if err != nil {
			return notFound(err, "attempt")
		}
		if attempt.UserID != caller.UserID {
			return ErrForbidden
		}
		if attempt.IsSubmitted {
			return ErrAttemptClosed
		}

		question, err := s.questionRepo.WithTx(tx).FindByIDForTest(ctx, req.QuestionID, attempt.TestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuestionNotInTest
			}
			return fmt.Errorf("load question: %w", err)
		}
		if req.SelectedOption != nil && (*req.SelectedOption < 0 || *req.SelectedOption >= len(question.Options)) {
			return ErrInvalidOption
		}

		answer := model.Answer{
			AttemptID:       attemptID,
			QuestionID:      req.QuestionID,
			SelectedOption:  req.SelectedOption,
			MarkedForReview: req.MarkedForReview,
		}
		return s.answerRepo.WithTx(tx).Upsert(ctx, &answer)
	})
	if err != nil {
		if !isDomainError(err) {
			log.Error().Err(err).Str("attemptID", attemptID.String()).Str("questionID", req.QuestionID.String()).Msg("SaveAnswer: failed")
		}
		return false, err
	}
	return true, nil
}

// SubmitAttempt closes the attempt for further answers and stamps the submission time.
// Submitting twice is accepted and keeps the first timestamp.
func (s *attemptService) SubmitAttempt(ctx context.Context, attemptID uuid.UUID, caller Principal) (bool, error) {
	attempt, err := s.attemptRepo.FindByID(ctx, attemptID)
	if err != nil {
		return false, notFound(err, "attempt")
	}
	if !caller.CanAccess(attempt.UserID) {
		return false, ErrForbidden
	}
	if err := s.attemptRepo.MarkSubmitted(ctx, attemptID, s.now()); err != nil {
		log.Error().Err(err).Str("attemptID", attemptID.String()).Msg("SubmitAttempt: failed to mark attempt submitted")
		return false, fmt.Errorf("submit attempt: %w", err)
	}
	log.Info().Str("attemptID", attemptID.String()).Bool("resubmission", attempt.IsSubmitted).Msg("Attempt submitted")
	return true, nil
}

func (s *attemptService) GetAttempt(ctx context.Context, attemptID uuid.UUID, caller Principal) (*dto.AttemptResponseDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithDetails(ctx, attemptID)
	if err != nil {
		return nil, notFound(err, "attempt")
	}
	if !caller.CanAccess(attempt.UserID) {
		return nil, ErrForbidden
	}
	resp := toAttemptDTO(attempt, attempt.Result != nil)
	if err := copier.Copy(&resp.Answers, &attempt.Answers); err != nil {
		return nil, fmt.Errorf("error preparing attempt response: %w", err)
	}
	return resp, nil
}

func (s *attemptService) ListMyAttempts(ctx context.Context, caller Principal) ([]dto.AttemptResponseDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUser(ctx, caller.UserID)
	if err != nil {
		log.Error().Err(err).Str("userID", caller.UserID.String()).Msg("ListMyAttempts: repository error")
		return nil, fmt.Errorf("error fetching attempts: %w", err)
	}
	out := make([]dto.AttemptResponseDTO, 0, len(attempts))
	for i := range attempts {
		out = append(out, *toAttemptDTO(&attempts[i], attempts[i].Result != nil))
	}
	return out, nil
}

func toAttemptDTO(a *model.Attempt, evaluated bool) *dto.AttemptResponseDTO {
	return &dto.AttemptResponseDTO{
		ID:          a.ID,
		TestID:      a.TestID,
		UserID:      a.UserID,
		StartedAt:   a.StartedAt,
		SubmittedAt: a.SubmittedAt,
		IsSubmitted: a.IsSubmitted,
		Status:      a.Status(evaluated),
	}
}

// isDomainError reports whether err is one of the expected, caller-facing failures.
func isDomainError(err error) bool {
	for _, target := range []error{
		ErrNotFound, ErrForbidden, ErrAlreadyStarted, ErrAttemptClosed, ErrQuestionNotInTest,
		ErrInvalidOption, ErrNoAttempts, ErrResultNotReady, ErrInvalidInput, ErrAlreadyExists,
		ErrInvalidCredentials,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
