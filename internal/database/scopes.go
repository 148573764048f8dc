package database

import (
	"fmt"

	"gorm.io/gorm"
)

// NewestFirst orders rows of table by creation time, most recent first.
func NewestFirst(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(fmt.Sprintf("%s.created_at DESC", table)).Order(fmt.Sprintf("%s.id DESC", table))
	}
}

// BySeverity orders problems high, medium, low, then by id.
func BySeverity(db *gorm.DB) *gorm.DB {
	return db.Order("CASE problems.severity WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END").
		Order("problems.id ASC")
}
