package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/mcqarena/internal/dto"
	"github.com/lshigami/mcqarena/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// scenario is two questions keyed [0, 2] with two students:
// X answers [0, nil] and submits first, Y answers [1, 2] and never submits.
type scenario struct {
	testID    uuid.UUID
	x, y      Principal
	attemptX  uuid.UUID
	attemptY  uuid.UUID
	submitX   time.Time
	evaluated time.Time
}

func newScenario(t *testing.T, f *fixture) scenario {
	t.Helper()
	ctx := context.Background()
	s := scenario{
		x:         f.user(t, "xavier", model.RoleStudent),
		y:         f.user(t, "yvonne", model.RoleStudent),
		submitX:   time.Date(2024, 5, 1, 10, 1, 0, 0, time.UTC),
		evaluated: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	var questions []uuid.UUID
	s.testID, questions = f.testWithKey(t, intPtr(0), intPtr(2))

	f.setClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	ax, err := f.attempts.StartAttempt(ctx, s.testID, s.x)
	require.NoError(t, err)
	ay, err := f.attempts.StartAttempt(ctx, s.testID, s.y)
	require.NoError(t, err)
	s.attemptX, s.attemptY = ax.ID, ay.ID

	f.answer(t, s.attemptX, questions[0], intPtr(0), s.x)
	f.answer(t, s.attemptX, questions[1], nil, s.x)
	f.answer(t, s.attemptY, questions[0], intPtr(1), s.y)
	f.answer(t, s.attemptY, questions[1], intPtr(2), s.y)

	f.setClock(s.submitX)
	_, err = f.attempts.SubmitAttempt(ctx, s.attemptX, s.x)
	require.NoError(t, err)

	f.setClock(s.evaluated)
	return s
}

func TestEvaluateTest_Scenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := newScenario(t, f)

	rows, err := f.evaluation.EvaluateTest(ctx, s.testID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byAttempt := map[uuid.UUID]dto.ResultRowDTO{}
	for _, r := range rows {
		assert.Equal(t, r.Total, r.Correct+r.Wrong+r.NotAnswered)
		assert.Equal(t, r.Correct, r.Score)
		byAttempt[r.AttemptID] = r
	}
	assert.Equal(t, dto.ResultRowDTO{AttemptID: s.attemptX, Score: 1, Total: 2, Correct: 1, Wrong: 0, NotAnswered: 1}, byAttempt[s.attemptX])
	assert.Equal(t, dto.ResultRowDTO{AttemptID: s.attemptY, Score: 1, Total: 2, Correct: 1, Wrong: 1, NotAnswered: 0}, byAttempt[s.attemptY])

	// Evaluation closes the cohort. X keeps the time it submitted; Y gets the evaluation time.
	var attempts []model.Attempt
	require.NoError(t, f.db.Find(&attempts).Error)
	for _, a := range attempts {
		assert.True(t, a.IsSubmitted)
		require.NotNil(t, a.SubmittedAt)
		switch a.ID {
		case s.attemptX:
			assert.True(t, s.submitX.Equal(*a.SubmittedAt), "X submitted_at = %v", a.SubmittedAt)
		case s.attemptY:
			assert.True(t, s.evaluated.Equal(*a.SubmittedAt), "Y submitted_at = %v", a.SubmittedAt)
		}
	}

	// Equal scores: the earlier submission ranks first.
	board, err := f.leaderboard.GetLeaderboard(ctx, s.testID)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, s.x.UserID, board[0].UserID)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, s.y.UserID, board[1].UserID)
	assert.Equal(t, 2, board[1].Rank)

	assert.Contains(t, f.cache.invalidated, s.testID)
}

func TestEvaluateTest_ClosesCohortForLateAnswers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := newScenario(t, f)

	_, err := f.evaluation.EvaluateTest(ctx, s.testID)
	require.NoError(t, err)

	var q model.Question
	require.NoError(t, f.db.First(&q).Error)
	_, err = f.attempts.SaveAnswer(ctx, s.attemptY, dto.SaveAnswerRequest{QuestionID: q.ID, SelectedOption: intPtr(0)}, s.y)
	assert.ErrorIs(t, err, ErrAttemptClosed)
}

func TestEvaluateTest_RerunReplacesResults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := newScenario(t, f)

	first, err := f.evaluation.EvaluateTest(ctx, s.testID)
	require.NoError(t, err)
	second, err := f.evaluation.EvaluateTest(ctx, s.testID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var count int64
	require.NoError(t, f.db.Model(&model.Result{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestEvaluateTest_UsesCurrentAnswerKey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := newScenario(t, f)

	_, err := f.evaluation.EvaluateTest(ctx, s.testID)
	require.NoError(t, err)

	// Re-key the first question to option 1: X loses a point, Y gains one.
	var first model.Question
	require.NoError(t, f.db.Order("position ASC").First(&first).Error)
	require.NoError(t, f.db.Model(&model.Question{}).Where("id = ?", first.ID).Update("correct_answer", 1).Error)

	rows, err := f.evaluation.EvaluateTest(ctx, s.testID)
	require.NoError(t, err)
	for _, r := range rows {
		switch r.AttemptID {
		case s.attemptX:
			assert.Equal(t, 0, r.Score)
		case s.attemptY:
			assert.Equal(t, 2, r.Score)
		}
	}

	board, err := f.leaderboard.GetLeaderboard(ctx, s.testID)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, s.y.UserID, board[0].UserID)
}

func TestEvaluateTest_NoAttempts(t *testing.T) {
	f := newFixture(t)
	testID, _ := f.testWithKey(t, intPtr(0))

	rows, err := f.evaluation.EvaluateTest(context.Background(), testID)
	assert.ErrorIs(t, err, ErrNoAttempts)
	assert.Nil(t, rows)

	var count int64
	require.NoError(t, f.db.Model(&model.Result{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, f.cache.invalidated)
}

func TestEvaluateTest_FailureLeavesNoResults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := newScenario(t, f)

	// Fail the attempt update that follows the result insert.
	injected := errors.New("injected failure")
	require.NoError(t, f.db.Callback().Update().Before("gorm:update").Register("test:fail_attempt_update", func(tx *gorm.DB) {
		if tx.Statement.Table == "attempts" {
			_ = tx.AddError(injected)
		}
	}))

	rows, err := f.evaluation.EvaluateTest(ctx, s.testID)
	require.Error(t, err)
	assert.ErrorIs(t, err, injected)
	assert.Nil(t, rows)

	var count int64
	require.NoError(t, f.db.Model(&model.Result{}).Count(&count).Error)
	assert.Zero(t, count)

	var y model.Attempt
	require.NoError(t, f.db.First(&y, "id = ?", s.attemptY).Error)
	assert.False(t, y.IsSubmitted)
	assert.Nil(t, y.SubmittedAt)
	assert.Empty(t, f.cache.invalidated)
}

func TestGetResult(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := newScenario(t, f)
	admin := f.user(t, "root", model.RoleAdmin)

	_, err := f.evaluation.GetResult(ctx, s.attemptX, s.x)
	assert.ErrorIs(t, err, ErrResultNotReady)

	_, err = f.evaluation.EvaluateTest(ctx, s.testID)
	require.NoError(t, err)

	res, err := f.evaluation.GetResult(ctx, s.attemptX, s.x)
	require.NoError(t, err)
	assert.Equal(t, s.attemptX, res.AttemptID)
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 1, res.NotAnswered)
	assert.InDelta(t, 50.0, res.Percentage, 0.001)

	_, err = f.evaluation.GetResult(ctx, s.attemptX, s.y)
	assert.ErrorIs(t, err, ErrForbidden)

	res, err = f.evaluation.GetResult(ctx, s.attemptX, admin)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Score)

	_, err = f.evaluation.GetResult(ctx, uuid.New(), admin)
	assert.ErrorIs(t, err, ErrNotFound)
}
