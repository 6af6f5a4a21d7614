package integration

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"se-trainer-be/internal/constant"
	"se-trainer-be/internal/dto"
	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/pkg/logger"
	"se-trainer-be/internal/repository/specification"
	"se-trainer-be/internal/repository/unitofwork"
	"se-trainer-be/internal/service"
	"se-trainer-be/pkg/database"
	"se-trainer-be/pkg/embedding"
	"se-trainer-be/pkg/llm"
	llmmock "se-trainer-be/pkg/llm/mock"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	return gormDB
}

func newTurnService(uowFactory unitofwork.RepositoryFactory, provider llm.Provider) service.ITurnService {
	testLogger := logger.NewZapLogger("logs/test.log", false)
	quotaService := service.NewQuotaService(uowFactory)
	retrievalService := service.NewRetrievalService(
		uowFactory,
		embedding.NewMockProvider(768),
		testLogger,
		3, 5,
	)
	return service.NewTurnService(
		uowFactory,
		quotaService,
		retrievalService,
		provider,
		nil, // no NATS in tests
		testLogger,
	)
}

// failingProvider simulates a generative backend outage.
type failingProvider struct{}

func (failingProvider) GenerateStructured(ctx context.Context, prompt string, schema map[string]interface{}, opts ...llm.Option) (map[string]interface{}, error) {
	return nil, errors.New("backend unavailable")
}

func createTestUser(t *testing.T, uow unitofwork.UnitOfWork, used int) *entity.User {
	t.Helper()
	user := &entity.User{
		Id:               uuid.New(),
		Email:            "turn-test-" + uuid.New().String() + "@example.com",
		FullName:         "Turn Pipeline Test User",
		Plan:             constant.PlanFree,
		PlanStatus:       constant.PlanStatusActive,
		MonthlyTurnLimit: 10,
		MonthlyTurnUsed:  used,
	}
	require.NoError(t, uow.UserRepository().Create(context.Background(), user))
	return user
}

func createTestSession(t *testing.T, uow unitofwork.UnitOfWork, userId uuid.UUID) *entity.TrainingSession {
	t.Helper()
	session := &entity.TrainingSession{
		Id:       uuid.New(),
		UserId:   userId,
		Track:    constant.TrackJobSearch,
		Scenario: constant.ScenarioProjectPitch,
		Level:    constant.LevelJunior,
	}
	require.NoError(t, uow.TrainingSessionRepository().Create(context.Background(), session))
	return session
}

func TestUnitOfWorkWiring(t *testing.T) {
	gormDB := setupDB(t)
	ctx := context.Background()

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(ctx)

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.TrainingSessionRepository())
	assert.NotNil(t, uow.TrainingTurnRepository())
	assert.NotNil(t, uow.ErrorEventRepository())
	assert.NotNil(t, uow.PublicKBCardRepository())
	assert.NotNil(t, uow.UserKBCardRepository())
	assert.NotNil(t, uow.UsageLedgerRepository())

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())
}

func TestTurnPipeline(t *testing.T) {
	gormDB := setupDB(t)
	ctx := context.Background()

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(ctx)
	turnService := newTurnService(uowFactory, llmmock.NewMockProvider())

	t.Run("Submit consumes quota and records error events", func(t *testing.T) {
		user := createTestUser(t, uow, 9) // one turn left
		session := createTestSession(t, uow, user.Id)

		// Short, metric-free input so the mock provider emits error tags
		res, err := turnService.SubmitTurn(ctx, user.Id, &dto.SubmitTurnRequest{
			SessionId: session.Id,
			UserInput: "I made our deploy pipeline better.",
		})
		require.NoError(t, err)

		assert.Equal(t, 1, res.TurnIndex)
		assert.Equal(t, constant.TurnStatusSuccess, res.Status)
		assert.Equal(t, 0, res.TurnsRemaining)
		assert.NotNil(t, res.Feedback["scores"])

		// Quota was consumed inside the same transaction
		freshUser, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: user.Id})
		require.NoError(t, err)
		assert.Equal(t, 10, freshUser.MonthlyTurnUsed)

		// One error event row per validated tag
		eventCount, err := uow.ErrorEventRepository().Count(ctx, specification.UserOwnedBy{UserID: user.Id})
		require.NoError(t, err)
		assert.Greater(t, eventCount, int64(0))

		// And a ledger entry for the submission
		ledgerCount, err := uow.UsageLedgerRepository().Count(ctx, specification.UserOwnedBy{UserID: user.Id})
		require.NoError(t, err)
		assert.Equal(t, int64(1), ledgerCount)
	})

	t.Run("Exhausted quota rejects and commits nothing", func(t *testing.T) {
		user := createTestUser(t, uow, 10)
		session := createTestSession(t, uow, user.Id)

		_, err := turnService.SubmitTurn(ctx, user.Id, &dto.SubmitTurnRequest{
			SessionId: session.Id,
			UserInput: "This submission should never reach the model.",
		})
		require.Error(t, err)

		var quotaErr *dto.QuotaExceededError
		require.ErrorAs(t, err, &quotaErr)
		assert.Equal(t, 10, quotaErr.Limit)
		assert.Equal(t, 10, quotaErr.Used)

		// No turn, no usage beyond the limit
		turnCount, err := uow.TrainingTurnRepository().CountBySession(ctx, session.Id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), turnCount)

		freshUser, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: user.Id})
		require.NoError(t, err)
		assert.Equal(t, 10, freshUser.MonthlyTurnUsed)
	})

	t.Run("Archived session rejects submission", func(t *testing.T) {
		user := createTestUser(t, uow, 0)
		session := createTestSession(t, uow, user.Id)

		session.IsArchived = true
		require.NoError(t, uow.TrainingSessionRepository().Update(ctx, session))

		_, err := turnService.SubmitTurn(ctx, user.Id, &dto.SubmitTurnRequest{
			SessionId: session.Id,
			UserInput: "Submitting into an archived session should fail.",
		})
		require.Error(t, err)
	})

	t.Run("Turn index is monotonic per session", func(t *testing.T) {
		user := createTestUser(t, uow, 0)
		session := createTestSession(t, uow, user.Id)

		for i := 1; i <= 3; i++ {
			res, err := turnService.SubmitTurn(ctx, user.Id, &dto.SubmitTurnRequest{
				SessionId: session.Id,
				UserInput: "I cut release time by 30% by parallelizing the test suite.",
			})
			require.NoError(t, err)
			assert.Equal(t, i, res.TurnIndex)
		}

		turns, err := uow.TrainingTurnRepository().FindAll(ctx,
			specification.BySessionID{SessionID: session.Id},
			specification.OrderBy{Field: "turn_index", Desc: false},
		)
		require.NoError(t, err)
		require.Len(t, turns, 3)
		for i, turn := range turns {
			assert.Equal(t, i+1, turn.TurnIndex)
		}
	})

	t.Run("Generation failure commits a fallback turn", func(t *testing.T) {
		user := createTestUser(t, uow, 0)
		session := createTestSession(t, uow, user.Id)
		brokenService := newTurnService(uowFactory, failingProvider{})

		input := "I rewrote the ingestion job to batch writes and cut costs."
		res, err := brokenService.SubmitTurn(ctx, user.Id, &dto.SubmitTurnRequest{
			SessionId: session.Id,
			UserInput: input,
		})
		require.NoError(t, err)

		assert.Equal(t, constant.TurnStatusFallback, res.Status)
		assert.NotEmpty(t, res.Feedback["scores"])

		// The fallback rewrite echoes the submission
		rewrites := res.Feedback["rewrites"].([]interface{})
		require.Len(t, rewrites, 1)
		assert.Equal(t, input, rewrites[0].(map[string]interface{})["original"])

		// The turn is durably committed and consumes quota
		turnCount, err := uow.TrainingTurnRepository().CountBySession(ctx, session.Id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), turnCount)

		freshUser, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: user.Id})
		require.NoError(t, err)
		assert.Equal(t, 1, freshUser.MonthlyTurnUsed)

		// Fallback feedback carries no tags, so no error events
		eventCount, err := uow.ErrorEventRepository().Count(ctx, specification.UserOwnedBy{UserID: user.Id})
		require.NoError(t, err)
		assert.Equal(t, int64(0), eventCount)
	})

	t.Run("Foreign session is invisible", func(t *testing.T) {
		owner := createTestUser(t, uow, 0)
		intruder := createTestUser(t, uow, 0)
		session := createTestSession(t, uow, owner.Id)

		_, err := turnService.SubmitTurn(ctx, intruder.Id, &dto.SubmitTurnRequest{
			SessionId: session.Id,
			UserInput: "Trying to submit into someone else's session.",
		})
		require.Error(t, err)
	})
}
