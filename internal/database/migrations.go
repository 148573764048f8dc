package database

import (
	"fmt"

	zlog "github.com/rs/zerolog/log"
	"github.com/yukikurage/collabhub/internal/models"
	"gorm.io/gorm"
)

// extraIndexes lists indexes that are not declared through struct tags.
var extraIndexes = []struct {
	model   interface{}
	name    string
	columns []string
}{
	// Feed and notification listings sort by creation time
	{&models.Project{}, "idx_projects_created_at", []string{"created_at"}},
	{&models.CollaborationRequest{}, "idx_requests_created_at", []string{"created_at"}},

	// Duplicate-request lookups
	{&models.CollaborationRequest{}, "idx_requests_sender_receiver", []string{"sender_id", "receiver_id"}},
}

// EnsureIndexes adds performance-critical indexes that are missing.
func EnsureIndexes(db *gorm.DB) error {
	for _, idx := range extraIndexes {
		migrator := db.Migrator()
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(idx.model); err != nil {
			return fmt.Errorf("failed to parse model for index %s: %w", idx.name, err)
		}

		cols := ""
		for i, c := range idx.columns {
			if i > 0 {
				cols += ", "
			}
			cols += db.Statement.Quote(c)
		}
		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)",
			db.Statement.Quote(idx.name), db.Statement.Quote(stmt.Schema.Table), cols)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		zlog.Info().Str("index", idx.name).Str("table", stmt.Schema.Table).Msg("Created index")
	}

	return nil
}
