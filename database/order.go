package database

import (
	"fmt"
	"strings"

	"github.com/rpupo63/portfolio-backend/errs"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListOptions narrows and orders a listing. A nil Order falls back to the
// entity's default display order.
type ListOptions struct {
	Order      []clause.OrderByColumn
	PublicOnly bool
}

func asc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column}}
}

func desc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: true}
}

// Default display orders
var (
	ProjectOrder     = []clause.OrderByColumn{asc("weight"), desc("start_date")}
	ArticleOrder     = []clause.OrderByColumn{asc("weight"), desc("date_posted")}
	TaskOrder        = []clause.OrderByColumn{asc("weight"), desc("time_last_edited")}
	JobOrder         = []clause.OrderByColumn{desc("start_date")}
	CategoryOrder    = []clause.OrderByColumn{asc("name")}
	SubCategoryOrder = []clause.OrderByColumn{asc("name")}
	CompanyOrder     = []clause.OrderByColumn{asc("name")}
)

// Sort keys callers may use per entity
var (
	commonSortFields = []string{"name", "time_added", "time_last_edited"}

	ProjectSortFields     = sortFields(commonSortFields, "weight", "start_date", "end_date")
	ArticleSortFields     = sortFields(commonSortFields, "weight", "date_posted")
	TaskSortFields        = sortFields([]string{"time_added", "time_last_edited"}, "task", "weight")
	JobSortFields         = sortFields([]string{"time_added", "time_last_edited"}, "title", "start_date", "end_date")
	CategorySortFields    = sortFields(commonSortFields)
	SubCategorySortFields = sortFields(commonSortFields)
	CompanySortFields     = sortFields(commonSortFields)
)

func sortFields(base []string, extra ...string) map[string]bool {
	out := make(map[string]bool, len(base)+len(extra))
	for _, f := range base {
		out[f] = true
	}
	for _, f := range extra {
		out[f] = true
	}
	return out
}

// ParseOrder turns "weight,-start_date" into order columns. A leading '-'
// sorts descending. Keys outside allowed are rejected.
func ParseOrder(raw string, allowed map[string]bool) ([]clause.OrderByColumn, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var order []clause.OrderByColumn
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		descending := strings.HasPrefix(part, "-")
		key := strings.TrimPrefix(part, "-")
		if !allowed[key] {
			return nil, errs.NewInvalidFieldError("order", fmt.Sprintf("cannot sort by %q", key))
		}
		order = append(order, clause.OrderByColumn{Column: clause.Column{Name: key}, Desc: descending})
	}
	return order, nil
}

func (o ListOptions) apply(db *gorm.DB, defaults []clause.OrderByColumn) *gorm.DB {
	order := o.Order
	if len(order) == 0 {
		order = defaults
	}
	for _, col := range order {
		db = db.Order(col)
	}
	return db
}
