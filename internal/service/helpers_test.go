package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/mcqarena/database"
	"github.com/lshigami/mcqarena/internal/dto"
	"github.com/lshigami/mcqarena/internal/model"
	"github.com/lshigami/mcqarena/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// memoryCache is a LeaderboardCache that records what happened to it.
type memoryCache struct {
	mu          sync.Mutex
	rows        map[uuid.UUID][]dto.RankRowDTO
	generations map[uuid.UUID]int64
	hits        int
	invalidated []uuid.UUID
}

func newMemoryCache() *memoryCache {
	return &memoryCache{rows: map[uuid.UUID][]dto.RankRowDTO{}, generations: map[uuid.UUID]int64{}}
}

func (c *memoryCache) Get(_ context.Context, testID uuid.UUID) ([]dto.RankRowDTO, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rows, ok := c.rows[testID]
	if ok {
		c.hits++
	}
	return rows, ok, nil
}

func (c *memoryCache) Generation(_ context.Context, testID uuid.UUID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[testID], nil
}

func (c *memoryCache) Set(_ context.Context, testID uuid.UUID, generation int64, rows []dto.RankRowDTO) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[testID] == generation {
		c.rows[testID] = rows
	}
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context, testID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.rows, testID)
	c.generations[testID]++
	c.invalidated = append(c.invalidated, testID)
	return nil
}

type fixture struct {
	db          *gorm.DB
	cache       *memoryCache
	users       repository.UserRepository
	attempts    AttemptService
	evaluation  EvaluationService
	leaderboard LeaderboardService
	admin       AdminTestService
	catalog     UserTestService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	mc := newMemoryCache()

	userRepo := repository.NewUserRepository(db)
	testRepo := repository.NewTestRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	resultRepo := repository.NewResultRepository(db)

	return &fixture{
		db:          db,
		cache:       mc,
		users:       userRepo,
		attempts:    NewAttemptService(testRepo, questionRepo, attemptRepo, answerRepo, db),
		evaluation:  NewEvaluationService(attemptRepo, answerRepo, questionRepo, resultRepo, NewScoreConverterService(), mc, db),
		leaderboard: NewLeaderboardService(resultRepo, mc),
		admin:       NewAdminTestService(testRepo, sectionRepo, questionRepo, mc, db),
		catalog:     NewUserTestService(testRepo),
	}
}

// setClock pins the time used by the attempt and evaluation services.
func (f *fixture) setClock(at time.Time) {
	clock := func() time.Time { return at }
	f.attempts.(*attemptService).now = clock
	f.evaluation.(*evaluationService).now = clock
}

func (f *fixture) user(t *testing.T, name, role string) Principal {
	t.Helper()
	u := model.User{Name: name, Email: name + "@example.com", PasswordHash: "x", Role: role}
	require.NoError(t, f.users.Create(context.Background(), &u))
	return Principal{UserID: u.ID, Role: u.Role, Name: u.Name, Email: u.Email}
}

// testWithKey creates a one-section test whose questions have the given correct answers.
// Every question has four options.
func (f *fixture) testWithKey(t *testing.T, key ...*int) (uuid.UUID, []uuid.UUID) {
	t.Helper()
	section := dto.SectionCreateDTO{Name: "Section A"}
	for i, correct := range key {
		section.Questions = append(section.Questions, dto.QuestionCreateDTO{
			Text:          "Question " + string(rune('A'+i)),
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: correct,
		})
	}
	created, err := f.admin.CreateTest(context.Background(), dto.TestCreateDTO{
		Title:    "Sample test",
		Duration: 30,
		Sections: []dto.SectionCreateDTO{section},
	})
	require.NoError(t, err)
	require.Len(t, created.Sections, 1)

	ids := make([]uuid.UUID, 0, len(key))
	for _, q := range created.Sections[0].Questions {
		ids = append(ids, q.ID)
	}
	require.Len(t, ids, len(key))
	return created.ID, ids
}

func (f *fixture) answer(t *testing.T, attemptID, questionID uuid.UUID, selected *int, caller Principal) {
	t.Helper()
	ok, err := f.attempts.SaveAnswer(context.Background(), attemptID, dto.SaveAnswerRequest{
		QuestionID:     questionID,
		SelectedOption: selected,
	}, caller)
	require.NoError(t, err)
	require.True(t, ok)
}
