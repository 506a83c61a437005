package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project is a piece of portfolio work shown on the site
type Project struct {
	ID                    uuid.UUID       `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name                  string          `json:"name" db:"name" gorm:"type:varchar(20);not null;unique" validate:"notblank,max=20"`
	ShortDescription      string          `json:"short_description" db:"short_description" gorm:"type:varchar(255);not null" validate:"notblank,max=255"`
	LongDescription       *string         `json:"long_description,omitempty" db:"long_description" gorm:"type:text"`
	Image                 *string         `json:"image,omitempty" db:"image" gorm:"type:text"`
	Slug                  string          `json:"slug" db:"slug" gorm:"type:varchar(50);not null;index" validate:"max=50,slug"`
	Weight                int             `json:"weight" db:"weight" gorm:"type:integer;not null;default:0"`
	RepositoryURL         *string         `json:"repository_url,omitempty" db:"repository_url" gorm:"type:varchar(200)" validate:"omitempty,max=200,http_url"`
	RepositoryURLIsPublic bool            `json:"repository_url_is_public" db:"repository_url_is_public" gorm:"not null"`
	LiveURL               *string         `json:"live_url,omitempty" db:"live_url" gorm:"type:varchar(200)" validate:"omitempty,max=200,http_url"`
	LiveURLIsPublic       bool            `json:"live_url_is_public" db:"live_url_is_public" gorm:"not null"`
	StartDate             *datatypes.Date `json:"start_date" db:"start_date" gorm:"not null;index" validate:"required"`
	EndDate               *datatypes.Date `json:"end_date,omitempty" db:"end_date"`
	IsPublic              bool            `json:"is_public" db:"is_public" gorm:"not null"`
	TimeAdded             time.Time       `json:"time_added" db:"time_added" gorm:"autoCreateTime"`
	TimeLastEdited        time.Time       `json:"time_last_edited" db:"time_last_edited" gorm:"autoUpdateTime"`
	SubCategories         []SubCategory   `json:"sub_categories,omitempty" gorm:"many2many:project_sub_categories" validate:"-"`
}

func (p Project) String() string {
	return fmt.Sprintf("%s %s", p.Name, p.ShortDescription)
}

// NewProject returns a public project with both of its links shown, the
// column defaults a new row gets.
func NewProject() *Project {
	return &Project{
		RepositoryURLIsPublic: true,
		LiveURLIsPublic:       true,
		IsPublic:              true,
	}
}
