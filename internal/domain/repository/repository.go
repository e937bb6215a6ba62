package repository

import (
	"medical-api/internal/domain/entity"
	"medical-api/pkg/pagination"

	"gorm.io/gorm"
)

// Repository persists records of a single entity type. Every method runs on
// the session or transaction it is given.
type Repository[E entity.Entity] interface {
	Create(db *gorm.DB, record *E) error
	FindByID(db *gorm.DB, id int) (*E, error)
	Update(db *gorm.DB, record *E) (int64, error)
	Delete(db *gorm.DB, id int) (int64, error)
}

// ReportRepository reads one sorted page of report rows. An unknown
// sortColumn sorts by the identifier.
type ReportRepository[R any] interface {
	GetReport(db *gorm.DB, sortColumn string, order pagination.SortOrder, params pagination.Params) (*pagination.PagedList[R], error)
}
