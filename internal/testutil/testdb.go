// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yukikurage/collabhub/internal/database"
	"github.com/yukikurage/collabhub/internal/models"
)

// OpenDB returns a migrated in-memory SQLite database with foreign keys enforced.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(":memory:")), database.GormConfig(logger.Silent))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Each new connection to :memory: would see an empty database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.EnsureIndexes(db))

	return db
}

// Fixtures creates rows with sensible defaults.
type Fixtures struct {
	t  *testing.T
	db *gorm.DB
}

func NewFixtures(t *testing.T, db *gorm.DB) *Fixtures {
	return &Fixtures{t: t, db: db}
}

func (f *Fixtures) Field(name string) *models.Field {
	field := &models.Field{Name: name}
	require.NoError(f.t, f.db.Create(field).Error)
	return field
}

func (f *Fixtures) Subfield(name, fieldName string) *models.Subfield {
	sub := &models.Subfield{Name: name, FieldName: fieldName}
	require.NoError(f.t, f.db.Create(sub).Error)
	return sub
}

func (f *Fixtures) User(name string, opts ...func(*models.User)) *models.User {
	user := &models.User{
		Name:        name,
		Email:       name + "@example.org",
		UserType:    models.UserTypeResearcher,
		Institution: "Test University",
		Country:     "Nowhere",
		Field:       "Testing",
	}
	for _, opt := range opts {
		opt(user)
	}
	require.NoError(f.t, f.db.Create(user).Error)
	return user
}

func (f *Fixtures) Problem(name string, severity models.Severity, subfieldID uint64) *models.Problem {
	problem := &models.Problem{
		Name:        name,
		Description: name + " description",
		Severity:    severity,
		SubfieldID:  subfieldID,
	}
	require.NoError(f.t, f.db.Create(problem).Error)
	return problem
}

func (f *Fixtures) Project(title string, owner *models.User, sub *models.Subfield) *models.Project {
	project := &models.Project{
		Title:         title,
		Description:   title + " description",
		OwnerID:       owner.ID,
		FieldName:     sub.FieldName,
		SubfieldID:    sub.ID,
		VacancyStatus: true,
	}
	require.NoError(f.t, f.db.Create(project).Error)
	return project
}

func (f *Fixtures) Post(content string, author *models.User) *models.Post {
	post := &models.Post{Content: content, AuthorID: author.ID}
	require.NoError(f.t, f.db.Create(post).Error)
	return post
}

func (f *Fixtures) Request(sender, receiver *models.User, target models.RequestTarget, status models.RequestStatus) *models.CollaborationRequest {
	req := &models.CollaborationRequest{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Status:     status,
	}
	req.SetTarget(target)
	require.NoError(f.t, f.db.Create(req).Error)
	return req
}
