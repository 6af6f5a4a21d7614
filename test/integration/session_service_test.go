package integration

import (
	"context"
	"testing"

	"se-trainer-be/internal/constant"
	"se-trainer-be/internal/dto"
	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/repository/unitofwork"
	"se-trainer-be/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionArchival(t *testing.T) {
	gormDB := setupDB(t)
	ctx := context.Background()

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(ctx)
	sessionService := service.NewSessionService(uowFactory)

	user := createTestUser(t, uow, 0)

	title := "Pitch practice"
	session := &entity.TrainingSession{
		Id:       uuid.New(),
		UserId:   user.Id,
		Track:    constant.TrackJobSearch,
		Scenario: constant.ScenarioProjectPitch,
		Level:    constant.LevelJunior,
		Title:    &title,
	}
	require.NoError(t, uow.TrainingSessionRepository().Create(ctx, session))

	archived := true
	_, err := sessionService.Update(ctx, user.Id, &dto.UpdateSessionRequest{
		Id:         session.Id,
		IsArchived: &archived,
	})
	require.NoError(t, err)

	// Archival flips the flag; everything set at creation stays fixed
	fresh, err := sessionService.Show(ctx, user.Id, session.Id)
	require.NoError(t, err)
	assert.True(t, fresh.IsArchived)
	require.NotNil(t, fresh.Title)
	assert.Equal(t, title, *fresh.Title)
	assert.Equal(t, constant.ScenarioProjectPitch, fresh.Scenario)

	t.Run("Archived sessions drop out of the default listing", func(t *testing.T) {
		sessions, err := sessionService.List(ctx, user.Id, false)
		require.NoError(t, err)
		assert.Len(t, sessions, 0)

		all, err := sessionService.List(ctx, user.Id, true)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Unarchive restores the session", func(t *testing.T) {
		restored := false
		_, err := sessionService.Update(ctx, user.Id, &dto.UpdateSessionRequest{
			Id:         session.Id,
			IsArchived: &restored,
		})
		require.NoError(t, err)

		fresh, err := sessionService.Show(ctx, user.Id, session.Id)
		require.NoError(t, err)
		assert.False(t, fresh.IsArchived)
	})
}
