package dto

import (
	"time"

	"github.com/yukikurage/collabhub/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	UserType    models.UserType `json:"user_type"`
	Institution string          `json:"institution"`
	Country     string          `json:"country"`
	Field       string          `json:"field"`
	Rating      float64         `json:"rating"`
}

// UserRefDTO is the short form of a user embedded in other objects
type UserRefDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// FieldDTO represents a field in API responses
type FieldDTO struct {
	Name string `json:"name"`
}

// SubfieldDTO represents a subfield in API responses
type SubfieldDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	FieldName string `json:"field_name"`
}

// ProblemDTO represents a problem in API responses
type ProblemDTO struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Severity    models.Severity `json:"severity"`
	CurrentWork string          `json:"current_work"`
	DoneWork    string          `json:"done_work"`
	Gaps        string          `json:"gaps"`
	SubfieldID  uint64          `json:"subfield_id"`
	Subfield    *SubfieldDTO    `json:"subfield,omitempty"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID            uint64       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	VacancyStatus bool         `json:"vacancy_status"`
	OwnerID       uint64       `json:"owner_id"`
	FieldName     string       `json:"field_name"`
	SubfieldID    uint64       `json:"subfield_id"`
	CreatedAt     time.Time    `json:"created_at"`
	Owner         *UserRefDTO  `json:"owner,omitempty"`
	Subfield      *SubfieldDTO `json:"subfield,omitempty"`
	Collaborators []UserRefDTO `json:"collaborators"`
}

// PostDTO represents a post in API responses
type PostDTO struct {
	ID        uint64      `json:"id"`
	Content   string      `json:"content"`
	AuthorID  uint64      `json:"author_id"`
	Author    *UserRefDTO `json:"author,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// RequestDTO represents a collaboration request in API responses
type RequestDTO struct {
	ID         uint64               `json:"id"`
	SenderID   uint64               `json:"sender_id"`
	ReceiverID uint64               `json:"receiver_id"`
	Status     models.RequestStatus `json:"status"`
	ProjectID  *uint64              `json:"project_id"`
	PostID     *uint64              `json:"post_id"`
	CreatedAt  time.Time            `json:"created_at"`
	Sender     *UserRefDTO          `json:"sender,omitempty"`
	// Subject is the project title or the post content.
	Subject string `json:"subject,omitempty"`
}

// ToUserDTO converts a user model to DTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		UserType:    user.UserType,
		Institution: user.Institution,
		Country:     user.Country,
		Field:       user.Field,
		Rating:      user.Rating,
	}
}

// ToUserDTOs converts a list of users
func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, u := range users {
		out[i] = ToUserDTO(u)
	}
	return out
}

func toUserRef(user models.User) *UserRefDTO {
	if user.ID == 0 {
		return nil
	}
	return &UserRefDTO{ID: user.ID, Name: user.Name}
}

// ToFieldDTOs converts a list of fields
func ToFieldDTOs(fields []models.Field) []FieldDTO {
	out := make([]FieldDTO, len(fields))
	for i, f := range fields {
		out[i] = FieldDTO{Name: f.Name}
	}
	return out
}

// ToSubfieldDTO converts a subfield model to DTO
func ToSubfieldDTO(sub models.Subfield) SubfieldDTO {
	return SubfieldDTO{ID: sub.ID, Name: sub.Name, FieldName: sub.FieldName}
}

// ToSubfieldDTOs converts a list of subfields
func ToSubfieldDTOs(subs []models.Subfield) []SubfieldDTO {
	out := make([]SubfieldDTO, len(subs))
	for i, s := range subs {
		out[i] = ToSubfieldDTO(s)
	}
	return out
}

// ToProblemDTO converts a problem model to DTO
func ToProblemDTO(problem models.Problem) ProblemDTO {
	out := ProblemDTO{
		ID:          problem.ID,
		Name:        problem.Name,
		Description: problem.Description,
		Severity:    problem.Severity,
		CurrentWork: problem.CurrentWork,
		DoneWork:    problem.DoneWork,
		Gaps:        problem.Gaps,
		SubfieldID:  problem.SubfieldID,
	}
	if problem.Subfield.ID != 0 {
		sub := ToSubfieldDTO(problem.Subfield)
		out.Subfield = &sub
	}
	return out
}

// ToProblemDTOs converts a list of problems
func ToProblemDTOs(problems []models.Problem) []ProblemDTO {
	out := make([]ProblemDTO, len(problems))
	for i, p := range problems {
		out[i] = ToProblemDTO(p)
	}
	return out
}

// ToProjectDTO converts a project model to DTO
func ToProjectDTO(project models.Project) ProjectDTO {
	out := ProjectDTO{
		ID:            project.ID,
		Title:         project.Title,
		Description:   project.Description,
		VacancyStatus: project.VacancyStatus,
		OwnerID:       project.OwnerID,
		FieldName:     project.FieldName,
		SubfieldID:    project.SubfieldID,
		CreatedAt:     project.CreatedAt,
		Owner:         toUserRef(project.Owner),
		Collaborators: make([]UserRefDTO, 0, len(project.Collaborators)),
	}
	if project.Subfield.ID != 0 {
		sub := ToSubfieldDTO(project.Subfield)
		out.Subfield = &sub
	}
	for _, u := range project.Collaborators {
		out.Collaborators = append(out.Collaborators, UserRefDTO{ID: u.ID, Name: u.Name})
	}
	return out
}

// ToProjectDTOs converts a list of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	out := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		out[i] = ToProjectDTO(p)
	}
	return out
}

// ToPostDTO converts a post model to DTO
func ToPostDTO(post models.Post) PostDTO {
	return PostDTO{
		ID:        post.ID,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		Author:    toUserRef(post.Author),
		CreatedAt: post.CreatedAt,
	}
}

// ToPostDTOs converts a list of posts
func ToPostDTOs(posts []models.Post) []PostDTO {
	out := make([]PostDTO, len(posts))
	for i, p := range posts {
		out[i] = ToPostDTO(p)
	}
	return out
}

// ToRequestDTO converts a collaboration request model to DTO
func ToRequestDTO(req models.CollaborationRequest) RequestDTO {
	out := RequestDTO{
		ID:         req.ID,
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Status:     req.Status,
		ProjectID:  req.ProjectID,
		PostID:     req.PostID,
		CreatedAt:  req.CreatedAt,
		Sender:     toUserRef(req.Sender),
	}
	switch {
	case req.Project != nil:
		out.Subject = req.Project.Title
	case req.Post != nil:
		out.Subject = req.Post.Content
	}
	return out
}

// ToRequestDTOs converts a list of collaboration requests
func ToRequestDTOs(reqs []models.CollaborationRequest) []RequestDTO {
	out := make([]RequestDTO, len(reqs))
	for i, r := range reqs {
		out[i] = ToRequestDTO(r)
	}
	return out
}
