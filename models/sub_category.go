package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SubCategory groups projects and articles and can sit under several categories
type SubCategory struct {
	ID             uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name           string     `json:"name" db:"name" gorm:"type:varchar(20);not null;unique" validate:"notblank,max=20"`
	Image          *string    `json:"image,omitempty" db:"image" gorm:"type:text"`
	Slug           string     `json:"slug" db:"slug" gorm:"type:varchar(50);not null;index" validate:"max=50,slug"`
	TimeAdded      time.Time  `json:"time_added" db:"time_added" gorm:"autoCreateTime"`
	TimeLastEdited time.Time  `json:"time_last_edited" db:"time_last_edited" gorm:"autoUpdateTime"`
	Categories     []Category `json:"categories,omitempty" gorm:"many2many:sub_category_categories" validate:"-"`
}

func (s SubCategory) String() string {
	names := make([]string, 0, len(s.Categories))
	for _, c := range s.Categories {
		names = append(names, c.Name)
	}
	return fmt.Sprintf("%s [%s]", s.Name, strings.Join(names, ", "))
}
