package models

type Field struct {
	Name string `gorm:"primaryKey;type:varchar(200)" json:"name"`
}

type Subfield struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	Name      string `gorm:"type:varchar(200);not null" json:"name"`
	FieldName string `gorm:"type:varchar(200);not null;index" json:"field_name"`

	// Relations
	Field Field `gorm:"foreignKey:FieldName;references:Name;constraint:OnDelete:CASCADE" json:"field,omitempty"`
}
