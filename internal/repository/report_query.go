package repository

import (
	"medical-api/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reportSource describes how one entity's report rows are read: the table
// rows are counted from and the joins and projection that shape a row.
type reportSource struct {
	model   interface{}
	idKey   clause.Column
	project func(db *gorm.DB) *gorm.DB
}

// findPage counts the whole table, then reads the requested window ordered
// by sortKey. Ties on sortKey are broken by the identifier in the same
// direction, so a descending page is the exact reverse of an ascending one.
func findPage[R any](db *gorm.DB, src reportSource, sortKey clause.Column, order pagination.SortOrder, params pagination.Params) (*pagination.PagedList[R], error) {
	var total int64
	if err := db.Model(src.model).Count(&total).Error; err != nil {
		return nil, err
	}

	items := make([]R, 0)
	if params.PastEnd(total) {
		return pagination.NewPagedList(items, params, total), nil
	}

	desc := order == pagination.Descending
	query := src.project(db.Model(src.model)).
		Order(clause.OrderByColumn{Column: sortKey, Desc: desc})
	if sortKey != src.idKey {
		query = query.Order(clause.OrderByColumn{Column: src.idKey, Desc: desc})
	}

	err := query.Offset(params.Offset()).Limit(params.Limit()).Scan(&items).Error
	if err != nil {
		return nil, err
	}

	return pagination.NewPagedList(items, params, total), nil
}
