package handler

import (
	"medical-api/internal/delivery/dto"
	"medical-api/internal/domain/entity"
	"medical-api/internal/usecase"
	"medical-api/pkg/validator"
)

type PatientHandler = RecordHandler[entity.Patient, *dto.PatientRequest, entity.PatientReport]

func NewPatientHandler(patientUsecase usecase.PatientUsecase, queries ReportQueryValidator, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		usecase:   patientUsecase,
		queries:   queries,
		validator: validator,
	}
}
