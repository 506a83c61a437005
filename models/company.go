package models

import (
	"time"

	"github.com/google/uuid"
)

// Company is an employer referenced by jobs
type Company struct {
	ID             uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name           string    `json:"name" db:"name" gorm:"type:varchar(20);not null;unique" validate:"notblank,max=20"`
	Logo           string    `json:"logo" db:"logo" gorm:"type:text;not null" validate:"notblank"`
	Website        *string   `json:"website,omitempty" db:"website" gorm:"type:varchar(200)" validate:"omitempty,max=200,http_url"`
	TimeAdded      time.Time `json:"time_added" db:"time_added" gorm:"autoCreateTime"`
	TimeLastEdited time.Time `json:"time_last_edited" db:"time_last_edited" gorm:"autoUpdateTime"`
}

func (c Company) String() string {
	return c.Name
}
