package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Article is a piece of writing hosted elsewhere and linked from the site
type Article struct {
	ID             uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name           string         `json:"name" db:"name" gorm:"type:varchar(20);not null;unique" validate:"notblank,max=20"`
	Description    string         `json:"description" db:"description" gorm:"type:varchar(255);not null" validate:"notblank,max=255"`
	Image          *string        `json:"image,omitempty" db:"image" gorm:"type:text"`
	Weight         int            `json:"weight" db:"weight" gorm:"type:integer;not null;default:0"`
	URL            string         `json:"url" db:"url" gorm:"type:varchar(200);not null" validate:"notblank,max=200,http_url"`
	DatePosted     datatypes.Date `json:"date_posted" db:"date_posted" gorm:"not null;index"`
	TimeAdded      time.Time      `json:"time_added" db:"time_added" gorm:"autoCreateTime"`
	TimeLastEdited time.Time      `json:"time_last_edited" db:"time_last_edited" gorm:"autoUpdateTime"`
	SubCategories  []SubCategory  `json:"sub_categories,omitempty" gorm:"many2many:article_sub_categories" validate:"-"`
}

func (a Article) String() string {
	return a.Name
}
