package models

import (
	"math"

	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeResearcher    UserType = "researcher"
	UserTypeFundingAgency UserType = "funding_agency"
)

// Valid reports whether t is one of the known user types.
func (t UserType) Valid() bool {
	return t == UserTypeResearcher || t == UserTypeFundingAgency
}

type User struct {
	ID          uint64   `gorm:"primarykey" json:"id"`
	Name        string   `gorm:"type:varchar(200);not null" json:"name"`
	Email       string   `gorm:"type:varchar(254);uniqueIndex;not null" json:"email"`
	UserType    UserType `gorm:"type:varchar(20);not null;default:'researcher';index" json:"user_type"`
	Institution string   `gorm:"type:varchar(300)" json:"institution"`
	Country     string   `gorm:"type:varchar(100)" json:"country"`
	// Field is free text and is not linked to the fields table.
	Field  string  `gorm:"type:varchar(200)" json:"field"`
	Rating float64 `gorm:"type:decimal(3,1);not null;default:0" json:"rating"`
}

// BeforeSave keeps the rating at one fractional digit.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Rating = math.Round(u.Rating*10) / 10
	return nil
}
