package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/mcqarena/database"
	"github.com/lshigami/mcqarena/internal/cache"
	"github.com/lshigami/mcqarena/internal/dto"
	"github.com/lshigami/mcqarena/internal/model"
	"github.com/lshigami/mcqarena/internal/repository"
	"github.com/lshigami/mcqarena/internal/scoring"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EvaluationService scores whole test cohorts and serves the stored results.
type EvaluationService interface {
	EvaluateTest(ctx context.Context, testID uuid.UUID) ([]dto.ResultRowDTO, error)
	GetResult(ctx context.Context, attemptID uuid.UUID, caller Principal) (*dto.ResultResponseDTO, error)
}

type evaluationService struct {
	attemptRepo    repository.AttemptRepository
	answerRepo     repository.AnswerRepository
	questionRepo   repository.QuestionRepository
	resultRepo     repository.ResultRepository
	scoreConverter ScoreConverterService
	leaderboard    cache.LeaderboardCache
	db             *gorm.DB
	now            func() time.Time
}

func NewEvaluationService(
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
	resultRepo repository.ResultRepository,
	scoreConverter ScoreConverterService,
	leaderboard cache.LeaderboardCache,
	db *gorm.DB,
) EvaluationService {
	return &evaluationService{
		attemptRepo:    attemptRepo,
		answerRepo:     answerRepo,
		questionRepo:   questionRepo,
		resultRepo:     resultRepo,
		scoreConverter: scoreConverter,
		leaderboard:    leaderboard,
		db:             db,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// EvaluateTest scores every attempt of the test against the current answer key and, in
// the same transaction, replaces their results and marks them all submitted. Evaluation
// closes the cohort: attempts that were never submitted are closed too, and later
// SaveAnswer calls are rejected. The returned rows are the computed values, not a re-read.
func (s *evaluationService) EvaluateTest(ctx context.Context, testID uuid.UUID) ([]dto.ResultRowDTO, error) {
	var tallies []scoring.Tally

	var txOpts []*sql.TxOptions
	lock := database.IsPostgres(s.db)
	if lock {
		txOpts = append(txOpts, &sql.TxOptions{Isolation: sql.LevelSerializable})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. attempts of the cohort
		attempts, err := s.attemptRepo.WithTx(tx).FindAllByTest(ctx, testID, lock)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}
		if len(attempts) == 0 {
			return ErrNoAttempts
		}
		attemptIDs := make([]uuid.UUID, len(attempts))
		for i, a := range attempts {
			attemptIDs[i] = a.ID
		}

		// 2. every answer of those attempts in one query
		answers, err := s.answerRepo.WithTx(tx).FindByAttemptIDs(ctx, attemptIDs)
		if err != nil {
			return fmt.Errorf("load answers: %w", err)
		}
		stored := make([]scoring.StoredAnswer, len(answers))
		for i, a := range answers {
			stored[i] = scoring.StoredAnswer{AttemptID: a.AttemptID, QuestionID: a.QuestionID, SelectedOption: a.SelectedOption}
		}

		// 3. the answer key as it is right now
		keyRows, err := s.questionRepo.WithTx(tx).AnswerKeyForTest(ctx, testID)
		if err != nil {
			return fmt.Errorf("load answer key: %w", err)
		}
		key := make([]scoring.KeyEntry, len(keyRows))
		for i, k := range keyRows {
			key[i] = scoring.KeyEntry{QuestionID: k.QuestionID, Correct: k.CorrectAnswer}
		}

		// 4-5. score in memory
		tallies = scoring.ScoreAll(attemptIDs, key, stored)

		// 6. commit: results are replaced, never duplicated, so re-running is safe
		results := make([]model.Result, len(tallies))
		for i, t := range tallies {
			results[i] = model.Result{
				AttemptID:   t.AttemptID,
				Score:       t.Score,
				Total:       t.Total,
				Correct:     t.Correct,
				Wrong:       t.Wrong,
				NotAnswered: t.NotAnswered,
			}
		}
		resultRepo := s.resultRepo.WithTx(tx)
		if err := resultRepo.DeleteByAttemptIDs(ctx, attemptIDs); err != nil {
			return fmt.Errorf("clear previous results: %w", err)
		}
		if err := resultRepo.CreateBatch(ctx, results); err != nil {
			return fmt.Errorf("insert results: %w", err)
		}
		if err := s.attemptRepo.WithTx(tx).MarkAllSubmitted(ctx, attemptIDs, s.now()); err != nil {
			return fmt.Errorf("close attempts: %w", err)
		}
		return nil
	}, txOpts...)
	if err != nil {
		if isDomainError(err) {
			log.Warn().Err(err).Str("testID", testID.String()).Msg("EvaluateTest: rejected")
			return nil, err
		}
		log.Error().Err(err).Str("testID", testID.String()).Msg("EvaluateTest: transaction rolled back")
		return nil, fmt.Errorf("evaluate test %s: %w", testID, err)
	}

	if err := s.leaderboard.Invalidate(ctx, testID); err != nil {
		log.Warn().Err(err).Str("testID", testID.String()).Msg("EvaluateTest: failed to invalidate leaderboard cache")
	}

	rows := make([]dto.ResultRowDTO, len(tallies))
	for i, t := range tallies {
		rows[i] = dto.ResultRowDTO{
			AttemptID:   t.AttemptID,
			Score:       t.Score,
			Total:       t.Total,
			Correct:     t.Correct,
			Wrong:       t.Wrong,
			NotAnswered: t.NotAnswered,
		}
	}
	log.Info().Str("testID", testID.String()).Int("attempts", len(rows)).Msg("Test evaluated")
	return rows, nil
}

// GetResult returns the stored result of an attempt to its owner or an admin.
func (s *evaluationService) GetResult(ctx context.Context, attemptID uuid.UUID, caller Principal) (*dto.ResultResponseDTO, error) {
	attempt, err := s.attemptRepo.FindByID(ctx, attemptID)
	if err != nil {
		return nil, notFound(err, "attempt")
	}
	if !caller.CanAccess(attempt.UserID) {
		return nil, ErrForbidden
	}

	result, err := s.resultRepo.FindByAttemptID(ctx, attemptID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrResultNotReady
	}
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID.String()).Msg("GetResult: repository error")
		return nil, fmt.Errorf("load result: %w", err)
	}

	var resp dto.ResultResponseDTO
	if err := copier.Copy(&resp, result); err != nil {
		return nil, fmt.Errorf("error preparing result response: %w", err)
	}
	resp.Percentage = s.scoreConverter.ToPercentage(result.Score, result.Total)
	return &resp, nil
}
