package models

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Rank orders severities from most to least urgent.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

type Problem struct {
	ID          uint64   `gorm:"primarykey" json:"id"`
	Name        string   `gorm:"type:varchar(300);not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Severity    Severity `gorm:"type:varchar(20);not null;default:'medium'" json:"severity"`
	CurrentWork string   `gorm:"type:text" json:"current_work"`
	DoneWork    string   `gorm:"type:text" json:"done_work"`
	Gaps        string   `gorm:"type:text" json:"gaps"`
	SubfieldID  uint64   `gorm:"not null;index" json:"subfield_id"`

	// Relations
	Subfield Subfield `gorm:"foreignKey:SubfieldID;constraint:OnDelete:CASCADE" json:"subfield,omitempty"`
}
