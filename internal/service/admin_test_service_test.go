package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lshigami/mcqarena/internal/dto"
	"github.com/lshigami/mcqarena/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleCreate() dto.TestCreateDTO {
	return dto.TestCreateDTO{
		Title:       "Midterm",
		Description: "Two sections",
		Duration:    45,
		Sections: []dto.SectionCreateDTO{
			{
				Name: "Listening",
				Questions: []dto.QuestionCreateDTO{
					{Text: "q1", Options: []string{"a", "b"}, CorrectAnswer: intPtr(1)},
					{Text: "q2", Options: []string{"a", "b", "c"}},
				},
			},
			{
				Name:     "Reading",
				Duration: intPtr(20),
				Questions: []dto.QuestionCreateDTO{
					{Text: "q3", Options: []string{"x", "y"}, CorrectAnswer: intPtr(0)},
				},
			},
		},
	}
}

func TestCreateTest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.admin.CreateTest(ctx, sampleCreate())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "Midterm", resp.Title)
	require.Len(t, resp.Sections, 2)
	assert.Equal(t, "Listening", resp.Sections[0].Name)
	assert.Equal(t, "Reading", resp.Sections[1].Name)
	require.NotNil(t, resp.Sections[1].Duration)
	assert.Equal(t, 20, *resp.Sections[1].Duration)
	require.Len(t, resp.Sections[0].Questions, 2)
	assert.Equal(t, "q1", resp.Sections[0].Questions[0].Text)
	assert.Equal(t, []string{"a", "b"}, resp.Sections[0].Questions[0].Options)
	require.NotNil(t, resp.Sections[0].Questions[0].CorrectAnswer)
	assert.Equal(t, 1, *resp.Sections[0].Questions[0].CorrectAnswer)
	assert.Nil(t, resp.Sections[0].Questions[1].CorrectAnswer)
}

func TestCreateTest_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*dto.TestCreateDTO)
	}{
		{"missing title", func(d *dto.TestCreateDTO) { d.Title = "" }},
		{"zero duration", func(d *dto.TestCreateDTO) { d.Duration = 0 }},
		{"single option", func(d *dto.TestCreateDTO) { d.Sections[0].Questions[0].Options = []string{"only"} }},
		{"correct answer out of range", func(d *dto.TestCreateDTO) { d.Sections[1].Questions[0].CorrectAnswer = intPtr(2) }},
		{"negative correct answer", func(d *dto.TestCreateDTO) { d.Sections[1].Questions[0].CorrectAnswer = intPtr(-1) }},
		{"blank section name", func(d *dto.TestCreateDTO) { d.Sections[0].Name = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleCreate()
			tt.mutate(&req)
			_, err := f.admin.CreateTest(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	var count int64
	require.NoError(t, f.db.Model(&model.Test{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateTest_TaggedChanges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.admin.CreateTest(ctx, sampleCreate())
	require.NoError(t, err)
	listening := created.Sections[0]

	resp, err := f.admin.UpdateTest(ctx, created.ID, dto.TestUpdateDTO{
		Title: strPtr("Final"),
		Sections: []dto.SectionChangeDTO{
			{New: &dto.SectionCreateDTO{
				Name:      "Writing",
				Questions: []dto.QuestionCreateDTO{{Text: "q4", Options: []string{"p", "q"}, CorrectAnswer: intPtr(1)}},
			}},
			{Update: &dto.SectionUpdateDTO{
				ID:   listening.ID,
				Name: strPtr("Listening A"),
				Questions: []dto.QuestionChangeDTO{
					{Update: &dto.QuestionUpdateDTO{ID: listening.Questions[0].ID, ClearCorrectAnswer: true}},
					{Update: &dto.QuestionUpdateDTO{ID: listening.Questions[1].ID, CorrectAnswer: intPtr(2)}},
					{New: &dto.QuestionCreateDTO{Text: "q2b", Options: []string{"m", "n"}}},
				},
			}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Final", resp.Title)
	assert.Equal(t, 45, resp.Duration)
	require.Len(t, resp.Sections, 3)
	assert.Equal(t, "Listening A", resp.Sections[0].Name)
	assert.Equal(t, "Writing", resp.Sections[2].Name)

	qs := resp.Sections[0].Questions
	require.Len(t, qs, 3)
	assert.Nil(t, qs[0].CorrectAnswer)
	require.NotNil(t, qs[1].CorrectAnswer)
	assert.Equal(t, 2, *qs[1].CorrectAnswer)
	assert.Equal(t, "q2b", qs[2].Text)
}

func TestUpdateTest_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.admin.CreateTest(ctx, sampleCreate())
	require.NoError(t, err)
	other, err := f.admin.CreateTest(ctx, sampleCreate())
	require.NoError(t, err)
	listening := created.Sections[0]

	tests := []struct {
		name    string
		testID  uuid.UUID
		req     dto.TestUpdateDTO
		wantErr error
	}{
		{
			name:    "unknown test",
			testID:  uuid.New(),
			req:     dto.TestUpdateDTO{Title: strPtr("x")},
			wantErr: ErrNotFound,
		},
		{
			name:    "section change with both branches",
			testID:  created.ID,
			req:     dto.TestUpdateDTO{Sections: []dto.SectionChangeDTO{{New: &dto.SectionCreateDTO{Name: "n"}, Update: &dto.SectionUpdateDTO{ID: listening.ID}}}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "section change with no branch",
			testID:  created.ID,
			req:     dto.TestUpdateDTO{Sections: []dto.SectionChangeDTO{{}}},
			wantErr: ErrInvalidInput,
		},
		{
			name:   "question change with no branch",
			testID: created.ID,
			req: dto.TestUpdateDTO{Sections: []dto.SectionChangeDTO{{Update: &dto.SectionUpdateDTO{
				ID: listening.ID, Questions: []dto.QuestionChangeDTO{{}},
			}}}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "section of another test",
			testID:  created.ID,
			req:     dto.TestUpdateDTO{Sections: []dto.SectionChangeDTO{{Update: &dto.SectionUpdateDTO{ID: other.Sections[0].ID, Name: strPtr("stolen")}}}},
			wantErr: ErrNotFound,
		},
		{
			name:   "correct answer beyond existing options",
			testID: created.ID,
			req: dto.TestUpdateDTO{Sections: []dto.SectionChangeDTO{{Update: &dto.SectionUpdateDTO{
				ID: listening.ID,
				Questions: []dto.QuestionChangeDTO{
					{Update: &dto.QuestionUpdateDTO{ID: listening.Questions[0].ID, CorrectAnswer: intPtr(5)}},
				},
			}}}},
			wantErr: ErrInvalidInput,
		},
		{
			name:   "shrinking options below the key",
			testID: created.ID,
			req: dto.TestUpdateDTO{Sections: []dto.SectionChangeDTO{{Update: &dto.SectionUpdateDTO{
				ID: listening.ID,
				Questions: []dto.QuestionChangeDTO{
					{Update: &dto.QuestionUpdateDTO{ID: listening.Questions[0].ID, Options: []string{"only", "two"}, CorrectAnswer: intPtr(3)}},
				},
			}}}},
			wantErr: ErrInvalidInput,
		},
		{
			name:   "empty options on an ungraded question",
			testID: created.ID,
			req: dto.TestUpdateDTO{Sections: []dto.SectionChangeDTO{{Update: &dto.SectionUpdateDTO{
				ID: listening.ID,
				Questions: []dto.QuestionChangeDTO{
					{Update: &dto.QuestionUpdateDTO{ID: listening.Questions[1].ID, Options: []string{}}},
				},
			}}}},
			wantErr: ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.admin.UpdateTest(ctx, tt.testID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Nothing leaked from the rejected updates.
	var section model.Section
	require.NoError(t, f.db.First(&section, "id = ?", other.Sections[0].ID).Error)
	assert.Equal(t, "Listening", section.Name)
	var ungraded model.Question
	require.NoError(t, f.db.First(&ungraded, "id = ?", listening.Questions[1].ID).Error)
	assert.Len(t, ungraded.Options, 3)
}

func TestUpdateTest_AppendsAfterDeletedRows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.admin.CreateTest(ctx, sampleCreate())
	require.NoError(t, err)
	listening, reading := created.Sections[0], created.Sections[1]

	_, err = f.admin.DeleteSections(ctx, []uuid.UUID{listening.ID})
	require.NoError(t, err)
	// Positions of another test do not count.
	_, err = f.admin.CreateTest(ctx, dto.TestCreateDTO{Title: "unrelated", Duration: 5})
	require.NoError(t, err)

	resp, err := f.admin.UpdateTest(ctx, created.ID, dto.TestUpdateDTO{Sections: []dto.SectionChangeDTO{
		{New: &dto.SectionCreateDTO{Name: "Writing"}},
		{Update: &dto.SectionUpdateDTO{ID: reading.ID, Questions: []dto.QuestionChangeDTO{
			{New: &dto.QuestionCreateDTO{Text: "q4", Options: []string{"p", "q"}}},
		}}},
	}})
	require.NoError(t, err)
	require.Len(t, resp.Sections, 2)
	assert.Equal(t, "Reading", resp.Sections[0].Name)
	assert.Equal(t, "Writing", resp.Sections[1].Name)

	var positions []int
	require.NoError(t, f.db.Model(&model.Section{}).Where("test_id = ?", created.ID).Order("position").Pluck("position", &positions).Error)
	assert.Equal(t, []int{1, 2}, positions)

	_, err = f.admin.DeleteQuestions(ctx, []uuid.UUID{reading.Questions[0].ID})
	require.NoError(t, err)
	resp, err = f.admin.UpdateTest(ctx, created.ID, dto.TestUpdateDTO{Sections: []dto.SectionChangeDTO{
		{Update: &dto.SectionUpdateDTO{ID: reading.ID, Questions: []dto.QuestionChangeDTO{
			{New: &dto.QuestionCreateDTO{Text: "q5", Options: []string{"p", "q"}}},
		}}},
	}})
	require.NoError(t, err)

	positions = nil
	require.NoError(t, f.db.Model(&model.Question{}).Where("section_id = ?", reading.ID).Order("position").Pluck("position", &positions).Error)
	assert.Equal(t, []int{1, 2}, positions)
	var texts []string
	for _, q := range resp.Sections[0].Questions {
		texts = append(texts, q.Text)
	}
	assert.Equal(t, []string{"q4", "q5"}, texts)
}

func TestDeleteTest_RemovesEverything(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := newScenario(t, f)
	_, err := f.evaluation.EvaluateTest(ctx, s.testID)
	require.NoError(t, err)
	f.cache.invalidated = nil

	require.NoError(t, f.admin.DeleteTest(ctx, s.testID))
	assert.Equal(t, []uuid.UUID{s.testID}, f.cache.invalidated)

	for _, m := range []interface{}{&model.Test{}, &model.Section{}, &model.Question{}, &model.Attempt{}, &model.Answer{}, &model.Result{}} {
		var count int64
		require.NoError(t, f.db.Model(m).Count(&count).Error)
		assert.Zero(t, count, "%T", m)
	}

	assert.ErrorIs(t, f.admin.DeleteTest(ctx, s.testID), ErrNotFound)
}

func TestDeleteSectionsAndQuestions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice", model.RoleStudent)
	created, err := f.admin.CreateTest(ctx, sampleCreate())
	require.NoError(t, err)

	attempt, err := f.attempts.StartAttempt(ctx, created.ID, alice)
	require.NoError(t, err)
	f.answer(t, attempt.ID, created.Sections[0].Questions[0].ID, intPtr(0), alice)
	f.answer(t, attempt.ID, created.Sections[1].Questions[0].ID, intPtr(0), alice)

	n, err := f.admin.DeleteQuestions(ctx, []uuid.UUID{created.Sections[0].Questions[0].ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = f.admin.DeleteSections(ctx, []uuid.UUID{created.Sections[1].ID, uuid.New()})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	var answers, questions int64
	require.NoError(t, f.db.Model(&model.Answer{}).Count(&answers).Error)
	require.NoError(t, f.db.Model(&model.Question{}).Count(&questions).Error)
	assert.Zero(t, answers)
	assert.EqualValues(t, 1, questions)

	_, err = f.admin.DeleteSections(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetTestDetails_HidesKeyFromStudents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	student := f.user(t, "alice", model.RoleStudent)
	admin := f.user(t, "root", model.RoleAdmin)
	created, err := f.admin.CreateTest(ctx, sampleCreate())
	require.NoError(t, err)

	got, err := f.catalog.GetTestDetails(ctx, created.ID, student)
	require.NoError(t, err)
	for _, s := range got.Sections {
		for _, q := range s.Questions {
			assert.Nil(t, q.CorrectAnswer)
			assert.NotEmpty(t, q.Options)
		}
	}

	got, err = f.catalog.GetTestDetails(ctx, created.ID, admin)
	require.NoError(t, err)
	require.NotNil(t, got.Sections[0].Questions[0].CorrectAnswer)
	assert.Equal(t, 1, *got.Sections[0].Questions[0].CorrectAnswer)

	_, err = f.catalog.GetTestDetails(ctx, uuid.New(), student)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAllTests_Counts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.admin.CreateTest(ctx, sampleCreate())
	require.NoError(t, err)

	list, err := f.catalog.GetAllTests(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Midterm", list[0].Title)
	assert.Equal(t, 45, list[0].Duration)
	assert.Equal(t, 2, list[0].SectionCount)
	assert.Equal(t, 3, list[0].QuestionCount)
}
