package models

import "time"

type Project struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Title       string `gorm:"type:varchar(300);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	// VacancyStatus is true while the project accepts collaborators.
	VacancyStatus bool      `gorm:"not null" json:"vacancy_status"`
	OwnerID       uint64    `gorm:"not null;index" json:"owner_id"`
	FieldName     string    `gorm:"type:varchar(200);not null" json:"field_name"`
	SubfieldID    uint64    `gorm:"not null;index" json:"subfield_id"`
	CreatedAt     time.Time `json:"created_at"`

	// Relations
	Owner         User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"owner,omitempty"`
	Field         Field    `gorm:"foreignKey:FieldName;references:Name;constraint:OnDelete:CASCADE" json:"field,omitempty"`
	Subfield      Subfield `gorm:"foreignKey:SubfieldID;constraint:OnDelete:CASCADE" json:"subfield,omitempty"`
	Collaborators []User   `gorm:"many2many:project_collaborators;constraint:OnDelete:CASCADE" json:"collaborators,omitempty"`
}

// ProjectCollaborator maps a row of the project_collaborators join table.
type ProjectCollaborator struct {
	ProjectID uint64 `gorm:"primarykey"`
	UserID    uint64 `gorm:"primarykey"`
}

func (ProjectCollaborator) TableName() string {
	return "project_collaborators"
}
