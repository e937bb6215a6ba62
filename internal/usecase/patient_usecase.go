package usecase

import (
	"medical-api/internal/delivery/dto"
	"medical-api/internal/domain/entity"
	"medical-api/internal/domain/repository"
	"medical-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase = RecordUsecase[entity.Patient, *dto.PatientRequest, entity.PatientReport]

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	patientReportRepo repository.PatientReportRepository,
	validator Validator,
	cache service.RecordCache,
) PatientUsecase {
	return &recordUsecase[entity.Patient, *dto.PatientRequest, entity.PatientReport]{
		db:         db,
		log:        log,
		table:      entity.Patient{}.TableName(),
		repo:       patientRepo,
		reportRepo: patientReportRepo,
		validator:  validator,
		cache:      cache,
	}
}
