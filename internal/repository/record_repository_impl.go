package repository

import (
	"errors"

	"medical-api/internal/domain/entity"

	"gorm.io/gorm"
)

// recordRepository is the gorm implementation shared by every entity type.
type recordRepository[E entity.Entity] struct{}

func (r *recordRepository[E]) Create(db *gorm.DB, record *E) error {
	return db.Create(record).Error
}

func (r *recordRepository[E]) FindByID(db *gorm.DB, id int) (*E, error) {
	var record E
	err := db.First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Update replaces every column of the row matching the record's identifier
// and reports how many rows matched.
func (r *recordRepository[E]) Update(db *gorm.DB, record *E) (int64, error) {
	result := db.Model(record).Select("*").Updates(record)
	return result.RowsAffected, result.Error
}

func (r *recordRepository[E]) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Delete(new(E), id)
	return result.RowsAffected, result.Error
}
