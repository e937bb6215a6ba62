package repository

import "medical-api/internal/domain/entity"

type PatientRepository interface {
	Repository[entity.Patient]
}

type PatientReportRepository interface {
	ReportRepository[entity.PatientReport]
}
