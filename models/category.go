package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is the top level grouping of portfolio work
type Category struct {
	ID             uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name           string    `json:"name" db:"name" gorm:"type:varchar(20);not null;unique" validate:"notblank,max=20"`
	Image          *string   `json:"image,omitempty" db:"image" gorm:"type:text"`
	Slug           string    `json:"slug" db:"slug" gorm:"type:varchar(50);not null;index" validate:"max=50,slug"`
	TimeAdded      time.Time `json:"time_added" db:"time_added" gorm:"autoCreateTime"`
	TimeLastEdited time.Time `json:"time_last_edited" db:"time_last_edited" gorm:"autoUpdateTime"`
}

func (c Category) String() string {
	return c.Name
}
