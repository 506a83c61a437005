package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Job is a position held at a company
type Job struct {
	ID             uuid.UUID       `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title          string          `json:"title" db:"title" gorm:"type:varchar(20);not null" validate:"notblank,max=20"`
	Level          JobLevel        `json:"level" db:"level" validate:"job_level"`
	CompanyID      uuid.UUID       `json:"company_id" db:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	Company        Company         `json:"company" gorm:"foreignKey:CompanyID;references:ID;constraint:OnDelete:CASCADE" validate:"-"`
	Tasks          []Task          `json:"tasks,omitempty" gorm:"many2many:job_tasks" validate:"-"`
	StartDate      datatypes.Date  `json:"start_date" db:"start_date" gorm:"not null;index"`
	EndDate        *datatypes.Date `json:"end_date,omitempty" db:"end_date"`
	IsPublic       bool            `json:"is_public" db:"is_public" gorm:"not null"`
	IsVolunteer    bool            `json:"is_volunteer" db:"is_volunteer" gorm:"not null"`
	TimeAdded      time.Time       `json:"time_added" db:"time_added" gorm:"autoCreateTime"`
	TimeLastEdited time.Time       `json:"time_last_edited" db:"time_last_edited" gorm:"autoUpdateTime"`
}

func (j Job) String() string {
	level := ""
	if j.Level != LevelNone {
		level = "(" + j.Level.String() + ") "
	}
	return fmt.Sprintf("%s %s- %s", j.Title, level, j.Company.Name)
}

// NewJob returns a public, non-volunteer job
func NewJob() *Job {
	return &Job{IsPublic: true}
}
