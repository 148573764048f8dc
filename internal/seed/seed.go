// Package seed loads the demonstration dataset.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/yukikurage/collabhub/internal/models"
	"github.com/yukikurage/collabhub/internal/repository"
)

// Summary counts the rows created by Run.
type Summary struct {
	Fields    int
	Subfields int
	Users     int
	Problems  int
	Projects  int
	Posts     int
	Requests  int
}

// Run replaces every row with the demonstration dataset in one transaction.
func Run(ctx context.Context, store *repository.Store) (*Summary, error) {
	summary := &Summary{}

	err := store.Transaction(ctx, func(tx *repository.Store) error {
		if err := deleteAll(tx.DB().WithContext(ctx)); err != nil {
			return err
		}

		subfieldIDs := make(map[string]uint64)
		for _, fs := range fieldSubfields {
			if err := tx.Catalog().CreateField(ctx, &models.Field{Name: fs.field}); err != nil {
				return fmt.Errorf("failed to create field %s: %w", fs.field, err)
			}
			summary.Fields++

			for _, name := range fs.subfields {
				sub := &models.Subfield{Name: name, FieldName: fs.field}
				if err := tx.Catalog().CreateSubfield(ctx, sub); err != nil {
					return fmt.Errorf("failed to create subfield %s: %w", name, err)
				}
				subfieldIDs[name] = sub.ID
				summary.Subfields++
			}
		}

		userIDs := make([]uint64, len(users))
		for i := range users {
			user := users[i]
			if err := tx.Users().Create(ctx, &user); err != nil {
				return fmt.Errorf("failed to create user %s: %w", user.Email, err)
			}
			userIDs[i] = user.ID
			summary.Users++
		}

		for _, p := range problems {
			problem := p.Problem
			problem.SubfieldID = subfieldIDs[p.subfield]
			if err := tx.Catalog().CreateProblem(ctx, &problem); err != nil {
				return fmt.Errorf("failed to create problem %s: %w", problem.Name, err)
			}
			summary.Problems++
		}

		projectIDs := make([]uint64, len(projects))
		for i, p := range projects {
			project := &models.Project{
				Title:         p.title,
				Description:   p.description,
				VacancyStatus: p.vacancy,
				OwnerID:       userIDs[p.owner],
				FieldName:     p.field,
				SubfieldID:    subfieldIDs[p.subfield],
			}
			if err := tx.Projects().Create(ctx, project); err != nil {
				return fmt.Errorf("failed to create project %s: %w", p.title, err)
			}
			projectIDs[i] = project.ID
			summary.Projects++
		}

		for _, p := range posts {
			if err := tx.Posts().Create(ctx, &models.Post{Content: p.content, AuthorID: userIDs[p.author]}); err != nil {
				return fmt.Errorf("failed to create post: %w", err)
			}
			summary.Posts++
		}

		for _, r := range requests {
			req := &models.CollaborationRequest{
				SenderID:   userIDs[r.sender],
				ReceiverID: userIDs[r.receiver],
				Status:     r.status,
			}
			req.SetTarget(models.ProjectTarget(projectIDs[r.project]))
			if err := tx.Requests().Create(ctx, req); err != nil {
				return fmt.Errorf("failed to create collaboration request: %w", err)
			}
			if r.status == models.RequestStatusAccepted {
				if err := tx.Projects().AddCollaborators(ctx, projectIDs[r.project], []uint64{req.SenderID}); err != nil {
					return fmt.Errorf("failed to add collaborator: %w", err)
				}
			}
			summary.Requests++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().
		Int("fields", summary.Fields).
		Int("subfields", summary.Subfields).
		Int("users", summary.Users).
		Int("problems", summary.Problems).
		Int("projects", summary.Projects).
		Int("posts", summary.Posts).
		Int("requests", summary.Requests).
		Msg("Seed data loaded")

	return summary, nil
}

// deleteAll deletes children before parents so it works without cascades too.
func deleteAll(db *gorm.DB) error {
	all := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []interface{}{
		&models.ProjectCollaborator{},
		&models.CollaborationRequest{},
		&models.Post{},
		&models.Project{},
		&models.Problem{},
		&models.Subfield{},
		&models.Field{},
		&models.User{},
	} {
		if err := all.Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", model, err)
		}
	}
	return nil
}
