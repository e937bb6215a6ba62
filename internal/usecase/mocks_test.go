package usecase

import (
	"context"
	"io"
	"testing"

	"medical-api/internal/domain/entity"
	"medical-api/internal/domain/repository"
	"medical-api/internal/service"
	"medical-api/pkg/pagination"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type MockRepository[E entity.Entity] struct {
	CreateFunc   func(db *gorm.DB, record *E) error
	FindByIDFunc func(db *gorm.DB, id int) (*E, error)
	UpdateFunc   func(db *gorm.DB, record *E) (int64, error)
	DeleteFunc   func(db *gorm.DB, id int) (int64, error)
}

var _ repository.DoctorRepository = (*MockRepository[entity.Doctor])(nil)
var _ repository.PatientRepository = (*MockRepository[entity.Patient])(nil)

func (m *MockRepository[E]) Create(db *gorm.DB, record *E) error {
	return m.CreateFunc(db, record)
}

func (m *MockRepository[E]) FindByID(db *gorm.DB, id int) (*E, error) {
	return m.FindByIDFunc(db, id)
}

func (m *MockRepository[E]) Update(db *gorm.DB, record *E) (int64, error) {
	return m.UpdateFunc(db, record)
}

func (m *MockRepository[E]) Delete(db *gorm.DB, id int) (int64, error) {
	return m.DeleteFunc(db, id)
}

type MockReportRepository[R any] struct {
	GetReportFunc func(db *gorm.DB, sortColumn string, order pagination.SortOrder, params pagination.Params) (*pagination.PagedList[R], error)
}

var _ repository.DoctorReportRepository = (*MockReportRepository[entity.DoctorReport])(nil)

func (m *MockReportRepository[R]) GetReport(db *gorm.DB, sortColumn string, order pagination.SortOrder, params pagination.Params) (*pagination.PagedList[R], error) {
	return m.GetReportFunc(db, sortColumn, order, params)
}

type MockRecordCache struct {
	GetFunc    func(ctx context.Context, key string, dest interface{}) (bool, error)
	SetFunc    func(ctx context.Context, key string, value interface{}) error
	DeleteFunc func(ctx context.Context, key string) error
}

var _ service.RecordCache = (*MockRecordCache)(nil)

func (m *MockRecordCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if m.GetFunc == nil {
		return false, nil
	}
	return m.GetFunc(ctx, key, dest)
}

func (m *MockRecordCache) Set(ctx context.Context, key string, value interface{}) error {
	if m.SetFunc == nil {
		return nil
	}
	return m.SetFunc(ctx, key, value)
}

func (m *MockRecordCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc == nil {
		return nil
	}
	return m.DeleteFunc(ctx, key)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
