package integration

import (
	"context"
	"testing"

	"se-trainer-be/internal/constant"
	"se-trainer-be/internal/dto"
	"se-trainer-be/internal/pkg/logger"
	"se-trainer-be/internal/repository/unitofwork"
	"se-trainer-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateLifecycle(t *testing.T) {
	gormDB := setupDB(t)
	ctx := context.Background()

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(ctx)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	publisherService := service.NewPublisherService("EMBED_KB_CARD_TEST", pubSub)
	templateService := service.NewTemplateService(
		uowFactory,
		publisherService,
		logger.NewZapLogger("logs/test.log", false),
	)

	user := createTestUser(t, uow, 0)

	title := "My Impact Opener"
	saveRes, err := templateService.SaveTemplate(ctx, user.Id, &dto.SaveTemplateRequest{
		Scenario: constant.ScenarioProjectPitch,
		Title:    &title,
		Content:  "I led [TASK], which improved [METRIC] by [X]%.",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, saveRes.Id)

	// Saving also writes a ledger entry
	ledgerCount, err := uow.UsageLedgerRepository().Count(ctx)
	require.NoError(t, err)
	assert.Greater(t, ledgerCount, int64(0))

	t.Run("List returns the saved template", func(t *testing.T) {
		cards, err := templateService.ListTemplates(ctx, user.Id, constant.ScenarioProjectPitch)
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, saveRes.Id, cards[0].Id)
		assert.Equal(t, constant.UserKBSourceSavedTemplate, cards[0].SourceType)
	})

	t.Run("Show returns the card by id", func(t *testing.T) {
		card, err := templateService.GetTemplate(ctx, user.Id, saveRes.Id)
		require.NoError(t, err)
		assert.Equal(t, title, card.Title)
	})

	t.Run("Scenario filter excludes other scenarios", func(t *testing.T) {
		cards, err := templateService.ListTemplates(ctx, user.Id, constant.ScenarioPRIssue)
		require.NoError(t, err)
		assert.Len(t, cards, 0)
	})

	t.Run("Other users cannot delete it", func(t *testing.T) {
		intruder := createTestUser(t, uow, 0)
		err := templateService.DeleteTemplate(ctx, intruder.Id, saveRes.Id)
		require.Error(t, err)
	})

	t.Run("Owner can delete it", func(t *testing.T) {
		require.NoError(t, templateService.DeleteTemplate(ctx, user.Id, saveRes.Id))

		cards, err := templateService.ListTemplates(ctx, user.Id, constant.ScenarioProjectPitch)
		require.NoError(t, err)
		assert.Len(t, cards, 0)
	})
}
