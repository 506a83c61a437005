package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a line of work shared between jobs
type Task struct {
	ID             uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Task           string    `json:"task" db:"task" gorm:"type:varchar(50);not null;unique" validate:"notblank,max=50"`
	Link           *string   `json:"link,omitempty" db:"link" gorm:"type:varchar(200)" validate:"omitempty,max=200,http_url"` // url to public work
	Weight         int       `json:"weight" db:"weight" gorm:"type:integer;not null;default:0"`
	TimeAdded      time.Time `json:"time_added" db:"time_added" gorm:"autoCreateTime"`
	TimeLastEdited time.Time `json:"time_last_edited" db:"time_last_edited" gorm:"autoUpdateTime;index"`
}

func (t Task) String() string {
	return t.Task
}
