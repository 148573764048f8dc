package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yukikurage/collabhub/internal/models"
	"github.com/yukikurage/collabhub/internal/repository"
	"github.com/yukikurage/collabhub/internal/testutil"
)

func TestRun(t *testing.T) {
	db := testutil.OpenDB(t)
	store := repository.NewStore(db)
	ctx := context.Background()

	summary, err := Run(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, &Summary{Fields: 5, Subfields: 25, Users: 8, Problems: 10, Projects: 6, Posts: 8, Requests: 3}, summary)

	var researchers int64
	require.NoError(t, db.Model(&models.User{}).Where("user_type = ?", models.UserTypeResearcher).Count(&researchers).Error)
	assert.EqualValues(t, 6, researchers)

	// The accepted request's sender is a member of the requested project
	var accepted models.CollaborationRequest
	require.NoError(t, db.Where("status = ?", models.RequestStatusAccepted).First(&accepted).Error)
	require.NotNil(t, accepted.ProjectID)
	members, err := store.Projects().ListCollaboratorIDs(ctx, *accepted.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{accepted.SenderID}, members)
}

func TestRun_ReplacesExistingRows(t *testing.T) {
	db := testutil.OpenDB(t)
	store := repository.NewStore(db)
	ctx := context.Background()

	fx := testutil.NewFixtures(t, db)
	fx.User("stale")

	_, err := Run(ctx, store)
	require.NoError(t, err)
	_, err = Run(ctx, store)
	require.NoError(t, err)

	var users, memberships int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.ProjectCollaborator{}).Count(&memberships).Error)
	assert.EqualValues(t, 8, users)
	assert.EqualValues(t, 1, memberships)
}
