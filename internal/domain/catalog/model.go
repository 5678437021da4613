package catalog

import "time"

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null;uniqueIndex:idx_categories_name"`
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Prompt struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;index"`
	CategoryID *uint  `gorm:"index"`
	Title      string `gorm:"not null"`
	Body       string `gorm:"type:text;not null"`
	Tags       string
	IsPublic   bool `gorm:"not null;default:false"`

	Category *Category

	CreatedAt time.Time
	UpdatedAt time.Time
}
