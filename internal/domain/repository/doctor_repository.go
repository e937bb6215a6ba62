package repository

import "medical-api/internal/domain/entity"

type DoctorRepository interface {
	Repository[entity.Doctor]
}

type DoctorReportRepository interface {
	ReportRepository[entity.DoctorReport]
}
