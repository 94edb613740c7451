package scoring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestScoreAttempt(t *testing.T) {
	q1, q2 := uuid.New(), uuid.New()
	key := []KeyEntry{{QuestionID: q1, Correct: intPtr(0)}, {QuestionID: q2, Correct: intPtr(2)}}
	attemptID := uuid.New()

	tests := []struct {
		name    string
		answers map[uuid.UUID]*int
		want    Tally
	}{
		{
			name:    "one right one blank",
			answers: map[uuid.UUID]*int{q1: intPtr(0), q2: nil},
			want:    Tally{AttemptID: attemptID, Score: 1, Total: 2, Correct: 1, Wrong: 0, NotAnswered: 1},
		},
		{
			name:    "one wrong one right",
			answers: map[uuid.UUID]*int{q1: intPtr(1), q2: intPtr(2)},
			want:    Tally{AttemptID: attemptID, Score: 1, Total: 2, Correct: 1, Wrong: 1, NotAnswered: 0},
		},
		{
			name:    "no answers at all",
			answers: nil,
			want:    Tally{AttemptID: attemptID, Score: 0, Total: 2, Correct: 0, Wrong: 0, NotAnswered: 2},
		},
		{
			name:    "all correct",
			answers: map[uuid.UUID]*int{q1: intPtr(0), q2: intPtr(2)},
			want:    Tally{AttemptID: attemptID, Score: 2, Total: 2, Correct: 2},
		},
		{
			name:    "answer to a question outside the key is ignored",
			answers: map[uuid.UUID]*int{uuid.New(): intPtr(0), q1: intPtr(0)},
			want:    Tally{AttemptID: attemptID, Score: 1, Total: 2, Correct: 1, NotAnswered: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreAttempt(attemptID, key, tt.answers)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Total, got.Correct+got.Wrong+got.NotAnswered)
			assert.Equal(t, got.Correct, got.Score)
		})
	}
}

func TestScoreAttempt_UngradedQuestionIsNeverCorrect(t *testing.T) {
	q := uuid.New()
	key := []KeyEntry{{QuestionID: q, Correct: nil}}

	got := ScoreAttempt(uuid.New(), key, map[uuid.UUID]*int{q: intPtr(0)})
	assert.Equal(t, 1, got.Total)
	assert.Equal(t, 1, got.Wrong)
	assert.Equal(t, 0, got.Score)

	got = ScoreAttempt(uuid.New(), key, nil)
	assert.Equal(t, 1, got.NotAnswered)
}

func TestIndexAnswers_LastWriteWins(t *testing.T) {
	a, q := uuid.New(), uuid.New()
	idx := IndexAnswers([]StoredAnswer{
		{AttemptID: a, QuestionID: q, SelectedOption: intPtr(1)},
		{AttemptID: a, QuestionID: q, SelectedOption: intPtr(3)},
	})
	require.Contains(t, idx, a)
	require.NotNil(t, idx[a][q])
	assert.Equal(t, 3, *idx[a][q])
}

func TestScoreAll_KeepsAttemptOrder(t *testing.T) {
	q := uuid.New()
	key := []KeyEntry{{QuestionID: q, Correct: intPtr(1)}}
	x, y, z := uuid.New(), uuid.New(), uuid.New()
	answers := []StoredAnswer{
		{AttemptID: y, QuestionID: q, SelectedOption: intPtr(1)},
		{AttemptID: x, QuestionID: q, SelectedOption: intPtr(0)},
	}

	got := ScoreAll([]uuid.UUID{x, y, z}, key, answers)
	require.Len(t, got, 3)
	assert.Equal(t, x, got[0].AttemptID)
	assert.Equal(t, 1, got[0].Wrong)
	assert.Equal(t, y, got[1].AttemptID)
	assert.Equal(t, 1, got[1].Score)
	assert.Equal(t, z, got[2].AttemptID)
	assert.Equal(t, 1, got[2].NotAnswered)
}

func TestScoreAll_EmptyKey(t *testing.T) {
	got := ScoreAll([]uuid.UUID{uuid.New()}, nil, nil)
	require.Len(t, got, 1)
	assert.Zero(t, got[0].Total)
	assert.Zero(t, got[0].Score)
}
