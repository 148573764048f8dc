package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yukikurage/collabhub/internal/models"
	"github.com/yukikurage/collabhub/internal/testutil"
)

func TestProjectRepository_AddCollaboratorsIsIdempotent(t *testing.T) {
	db := testutil.OpenDB(t)
	fx := testutil.NewFixtures(t, db)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	fx.Field("Biology")
	sub := fx.Subfield("Genetics", "Biology")
	owner := fx.User("owner")
	a := fx.User("alice")
	b := fx.User("bob")
	project := fx.Project("CRISPR", owner, sub)

	require.NoError(t, repo.AddCollaborators(ctx, project.ID, []uint64{a.ID, b.ID}))
	require.NoError(t, repo.AddCollaborators(ctx, project.ID, []uint64{a.ID}))

	ids, err := repo.ListCollaboratorIDs(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{a.ID, b.ID}, ids)

	// The many2many association sees the same rows
	loaded, err := repo.FindByID(ctx, project.ID, "Collaborators")
	require.NoError(t, err)
	assert.Len(t, loaded.Collaborators, 2)
}

func TestProjectRepository_ListOwnersBySubfieldIsDistinct(t *testing.T) {
	db := testutil.OpenDB(t)
	fx := testutil.NewFixtures(t, db)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	fx.Field("Computer Science")
	ml := fx.Subfield("Machine Learning", "Computer Science")
	db2 := fx.Subfield("Database Systems", "Computer Science")
	zoe := fx.User("zoe")
	adam := fx.User("adam")
	other := fx.User("other")

	fx.Project("One", zoe, ml)
	fx.Project("Two", zoe, ml)
	fx.Project("Three", adam, ml)
	fx.Project("Elsewhere", other, db2)

	owners, err := repo.ListOwnersBySubfield(ctx, ml.ID)
	require.NoError(t, err)
	require.Len(t, owners, 2)
	assert.Equal(t, "adam", owners[0].Name)
	assert.Equal(t, "zoe", owners[1].Name)
}

func TestRequestRepository_FindExistingMatchesTarget(t *testing.T) {
	db := testutil.OpenDB(t)
	fx := testutil.NewFixtures(t, db)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	sender := fx.User("sender")
	receiver := fx.User("receiver")
	post := fx.Post("hello", receiver)
	other := fx.Post("again", receiver)
	fx.Request(sender, receiver, models.PostTarget(post.ID), models.RequestStatusRejected)

	found, err := repo.FindExisting(ctx, sender.ID, receiver.ID, models.PostTarget(post.ID))
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusRejected, found.Status)

	_, err = repo.FindExisting(ctx, sender.ID, receiver.ID, models.PostTarget(other.ID))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindExisting(ctx, sender.ID, receiver.ID, models.RequestTarget{})
	assert.ErrorIs(t, err, models.ErrInvalidRequestTarget)
}

func TestUserRepository_DeleteMissing(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := NewUserRepository(db)

	err := repo.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
