package handler

import (
	"medical-api/internal/delivery/dto"
	"medical-api/internal/domain/entity"
	"medical-api/internal/usecase"
	"medical-api/pkg/validator"
)

type DoctorHandler = RecordHandler[entity.Doctor, *dto.DoctorRequest, entity.DoctorReport]

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, queries ReportQueryValidator, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		usecase:   doctorUsecase,
		queries:   queries,
		validator: validator,
	}
}
