package models

import "gorm.io/gorm"

// Tables lists every persisted struct in migration order. Join rows come last
// so that both sides of each relationship already exist.
func Tables() []interface{} {
	return []interface{}{
		&Category{},
		&SubCategory{},
		&Project{},
		&Article{},
		&Company{},
		&Task{},
		&Job{},
		&SubCategoryCategory{},
		&ProjectSubCategory{},
		&ArticleSubCategory{},
		&JobTask{},
	}
}

// TableNames maps each table to an empty instance of its struct.
func TableNames() map[string]interface{} {
	return map[string]interface{}{
		"categories":              Category{},
		"sub_categories":          SubCategory{},
		"projects":                Project{},
		"articles":                Article{},
		"companies":               Company{},
		"tasks":                   Task{},
		"jobs":                    Job{},
		"sub_category_categories": SubCategoryCategory{},
		"project_sub_categories":  ProjectSubCategory{},
		"article_sub_categories":  ArticleSubCategory{},
		"job_tasks":               JobTask{},
	}
}

// RegisterJoinTables binds each many-to-many field to its join struct.
// It has to run on every *gorm.DB before the relationships are used.
func RegisterJoinTables(db *gorm.DB) error {
	joins := []struct {
		model     interface{}
		field     string
		joinTable interface{}
	}{
		{&SubCategory{}, "Categories", &SubCategoryCategory{}},
		{&Project{}, "SubCategories", &ProjectSubCategory{}},
		{&Article{}, "SubCategories", &ArticleSubCategory{}},
		{&Job{}, "Tasks", &JobTask{}},
	}
	for _, j := range joins {
		if err := db.SetupJoinTable(j.model, j.field, j.joinTable); err != nil {
			return err
		}
	}
	return nil
}
