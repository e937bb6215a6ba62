package handler

import (
	"context"

	"medical-api/internal/delivery/dto"
	"medical-api/internal/domain/entity"
	"medical-api/internal/usecase"
	"medical-api/pkg/pagination"
)

type MockRecordUsecase[E entity.Entity, Req usecase.Mappable[E], R any] struct {
	GetReportFunc  func(ctx context.Context, query *dto.ReportQuery) (*pagination.PagedList[R], error)
	GetByIDFunc    func(ctx context.Context, id int) (*E, error)
	AddFunc        func(ctx context.Context, req Req) (*E, error)
	EditFunc       func(ctx context.Context, req Req) (*E, error)
	DeleteByIDFunc func(ctx context.Context, id int) error
}

var _ usecase.DoctorUsecase = (*MockRecordUsecase[entity.Doctor, *dto.DoctorRequest, entity.DoctorReport])(nil)
var _ usecase.PatientUsecase = (*MockRecordUsecase[entity.Patient, *dto.PatientRequest, entity.PatientReport])(nil)

func (m *MockRecordUsecase[E, Req, R]) GetReport(ctx context.Context, query *dto.ReportQuery) (*pagination.PagedList[R], error) {
	return m.GetReportFunc(ctx, query)
}

func (m *MockRecordUsecase[E, Req, R]) GetByID(ctx context.Context, id int) (*E, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *MockRecordUsecase[E, Req, R]) Add(ctx context.Context, req Req) (*E, error) {
	return m.AddFunc(ctx, req)
}

func (m *MockRecordUsecase[E, Req, R]) Edit(ctx context.Context, req Req) (*E, error) {
	return m.EditFunc(ctx, req)
}

func (m *MockRecordUsecase[E, Req, R]) DeleteByID(ctx context.Context, id int) error {
	return m.DeleteByIDFunc(ctx, id)
}
