// Package scoring turns stored answers and an answer key into per-attempt tallies.
// It performs no I/O; the evaluation service loads the rows and commits the output.
package scoring

import "github.com/google/uuid"

// KeyEntry is one question of the answer key. Correct is nil for ungraded questions.
type KeyEntry struct {
	QuestionID uuid.UUID
	Correct    *int
}

// StoredAnswer is the part of an Answer row that scoring needs.
type StoredAnswer struct {
	AttemptID      uuid.UUID
	QuestionID     uuid.UUID
	SelectedOption *int
}

// Tally is the computed outcome for a single attempt.
type Tally struct {
	AttemptID   uuid.UUID
	Score       int
	Total       int
	Correct     int
	Wrong       int
	NotAnswered int
}

// AnswerIndex maps attemptID -> questionID -> selected option.
type AnswerIndex map[uuid.UUID]map[uuid.UUID]*int

// IndexAnswers builds the lookup used during scoring. Later duplicates overwrite earlier ones.
func IndexAnswers(answers []StoredAnswer) AnswerIndex {
	idx := make(AnswerIndex)
	for _, a := range answers {
		byQuestion, ok := idx[a.AttemptID]
		if !ok {
			byQuestion = make(map[uuid.UUID]*int)
			idx[a.AttemptID] = byQuestion
		}
		byQuestion[a.QuestionID] = a.SelectedOption
	}
	return idx
}

// ScoreAttempt tallies one attempt against the key. Score equals Correct; there is no
// partial or negative credit.
func ScoreAttempt(attemptID uuid.UUID, key []KeyEntry, answers map[uuid.UUID]*int) Tally {
	t := Tally{AttemptID: attemptID, Total: len(key)}
	for _, k := range key {
		selected, ok := answers[k.QuestionID]
		switch {
		case !ok || selected == nil:
			t.NotAnswered++
		case k.Correct != nil && *selected == *k.Correct:
			t.Correct++
		default:
			t.Wrong++
		}
	}
	t.Score = t.Correct
	return t
}

// ScoreAll scores every attempt, preserving the order of attemptIDs.
func ScoreAll(attemptIDs []uuid.UUID, key []KeyEntry, answers []StoredAnswer) []Tally {
	idx := IndexAnswers(answers)
	out := make([]Tally, 0, len(attemptIDs))
	for _, id := range attemptIDs {
		out = append(out, ScoreAttempt(id, key, idx[id]))
	}
	return out
}
