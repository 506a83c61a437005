package models

import "github.com/google/uuid"

// Join rows for the many-to-many relationships. They are registered with
// gorm through SetupJoinTable so the association tables are owned by the
// application instead of being created implicitly.

type SubCategoryCategory struct {
	SubCategoryID uuid.UUID `json:"sub_category_id" db:"sub_category_id" gorm:"type:uuid;primaryKey"`
	CategoryID    uuid.UUID `json:"category_id" db:"category_id" gorm:"type:uuid;primaryKey;index"`
}

type ProjectSubCategory struct {
	ProjectID     uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;primaryKey"`
	SubCategoryID uuid.UUID `json:"sub_category_id" db:"sub_category_id" gorm:"type:uuid;primaryKey;index"`
}

type ArticleSubCategory struct {
	ArticleID     uuid.UUID `json:"article_id" db:"article_id" gorm:"type:uuid;primaryKey"`
	SubCategoryID uuid.UUID `json:"sub_category_id" db:"sub_category_id" gorm:"type:uuid;primaryKey;index"`
}

type JobTask struct {
	JobID  uuid.UUID `json:"job_id" db:"job_id" gorm:"type:uuid;primaryKey"`
	TaskID uuid.UUID `json:"task_id" db:"task_id" gorm:"type:uuid;primaryKey;index"`
}
