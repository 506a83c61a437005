package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// uniqueIDs drops nil and repeated ids, keeping first-seen order
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// missingIDs returns the ids that have no row in model's table
func missingIDs(db *gorm.DB, model interface{}, ids []uuid.UUID) ([]uuid.UUID, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	var found []uuid.UUID
	if err := db.Model(model).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	present := make(map[uuid.UUID]bool, len(found))
	for _, id := range found {
		present[id] = true
	}
	var missing []uuid.UUID
	for _, id := range ids {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// replaceJoinRows swaps every join row owned by ownerID for rows
func replaceJoinRows[T any](db *gorm.DB, ownerColumn string, ownerID uuid.UUID, rows []T) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(ownerColumn+" = ?", ownerID).Delete(new(T)).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// deleteByID removes one row, reporting gorm.ErrRecordNotFound when nothing matched
func deleteByID(db *gorm.DB, model interface{}, id uuid.UUID) error {
	result := db.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
