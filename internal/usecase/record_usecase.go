package usecase

import (
	"context"

	"medical-api/internal/delivery/dto"
	"medical-api/internal/domain/entity"
	"medical-api/internal/domain/repository"
	"medical-api/internal/service"
	"medical-api/pkg/pagination"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Mappable is a request payload that describes a record of type E.
type Mappable[E any] interface {
	Identifier() int
	ToEntity(id int) *E
}

// Validator checks request payloads before they reach the store.
type Validator interface {
	Validate(i interface{}) error
	FormatValidationErrors(err error) []string
}

// RecordUsecase is the CRUD and report surface shared by doctors and
// patients. E is the stored entity, Req the write payload and R the report
// row.
type RecordUsecase[E entity.Entity, Req Mappable[E], R any] interface {
	GetReport(ctx context.Context, query *dto.ReportQuery) (*pagination.PagedList[R], error)
	GetByID(ctx context.Context, id int) (*E, error)
	Add(ctx context.Context, req Req) (*E, error)
	Edit(ctx context.Context, req Req) (*E, error)
	DeleteByID(ctx context.Context, id int) error
}

type recordUsecase[E entity.Entity, Req Mappable[E], R any] struct {
	db         *gorm.DB
	log        *logrus.Logger
	table      string
	repo       repository.Repository[E]
	reportRepo repository.ReportRepository[R]
	validator  Validator
	cache      service.RecordCache
}

func (u *recordUsecase[E, Req, R]) GetReport(ctx context.Context, query *dto.ReportQuery) (*pagination.PagedList[R], error) {
	params := pagination.New(query.Page, query.PageSize)
	order := pagination.ParseSortOrder(query.SortOrder)

	page, err := u.reportRepo.GetReport(u.db.WithContext(ctx), query.SortColumn, order, params)
	if err != nil {
		u.log.Warnf("Failed to get %s report: %+v", u.table, err)
		return nil, err
	}

	return page, nil
}

func (u *recordUsecase[E, Req, R]) GetByID(ctx context.Context, id int) (*E, error) {
	key := service.RecordKey(u.table, id)

	var cached E
	found, err := u.cache.Get(ctx, key, &cached)
	if err != nil {
		u.log.Warnf("Failed to read %s from cache: %+v", key, err)
	}
	if found {
		return &cached, nil
	}

	record, err := u.repo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find %s %d: %+v", u.table, id, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	if err := u.cache.Set(ctx, key, record); err != nil {
		u.log.Warnf("Failed to cache %s: %+v", key, err)
	}

	return record, nil
}

func (u *recordUsecase[E, Req, R]) Add(ctx context.Context, req Req) (*E, error) {
	if err := u.validate(req); err != nil {
		return nil, err
	}

	record := req.ToEntity(0)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.repo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create %s: %+v", u.table, err)
		return nil, &StoreError{Op: "create " + u.table, Err: err}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, &StoreError{Op: "commit", Err: err}
	}

	return record, nil
}

func (u *recordUsecase[E, Req, R]) Edit(ctx context.Context, req Req) (*E, error) {
	if err := u.validate(req); err != nil {
		return nil, err
	}

	id := req.Identifier()
	if id == 0 {
		return nil, ErrRecordNotFound
	}
	record := req.ToEntity(id)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.repo.Update(tx, record)
	if err != nil {
		u.log.Warnf("Failed to update %s %d: %+v", u.table, id, err)
		return nil, &StoreError{Op: "update " + u.table, Err: err}
	}
	if affected == 0 {
		return nil, ErrRecordNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, &StoreError{Op: "commit", Err: err}
	}

	u.evict(ctx, id)

	return record, nil
}

func (u *recordUsecase[E, Req, R]) DeleteByID(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.repo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete %s %d: %+v", u.table, id, err)
		return &StoreError{Op: "delete " + u.table, Err: err}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return &StoreError{Op: "commit", Err: err}
	}

	if affected > 0 {
		u.evict(ctx, id)
	}

	return nil
}

func (u *recordUsecase[E, Req, R]) validate(req Req) error {
	if err := u.validator.Validate(req); err != nil {
		return &ValidationError{Messages: u.validator.FormatValidationErrors(err)}
	}
	return nil
}

func (u *recordUsecase[E, Req, R]) evict(ctx context.Context, id int) {
	key := service.RecordKey(u.table, id)
	if err := u.cache.Delete(ctx, key); err != nil {
		u.log.Warnf("Failed to evict %s: %+v", key, err)
	}
}
