package usecase

import (
	"medical-api/internal/delivery/dto"
	"medical-api/internal/domain/entity"
	"medical-api/internal/domain/repository"
	"medical-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DoctorUsecase = RecordUsecase[entity.Doctor, *dto.DoctorRequest, entity.DoctorReport]

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	doctorReportRepo repository.DoctorReportRepository,
	validator Validator,
	cache service.RecordCache,
) DoctorUsecase {
	return &recordUsecase[entity.Doctor, *dto.DoctorRequest, entity.DoctorReport]{
		db:         db,
		log:        log,
		table:      entity.Doctor{}.TableName(),
		repo:       doctorRepo,
		reportRepo: doctorReportRepo,
		validator:  validator,
		cache:      cache,
	}
}
