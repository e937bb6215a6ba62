package repository

import (
	"medical-api/internal/domain/entity"
	domainRepo "medical-api/internal/domain/repository"
	"medical-api/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func NewPatientRepository() domainRepo.PatientRepository {
	return &recordRepository[entity.Patient]{}
}

type patientReportRepository struct {
	source reportSource
}

func NewPatientReportRepository() domainRepo.PatientReportRepository {
	return &patientReportRepository{
		source: reportSource{
			model: &entity.Patient{},
			idKey: patientSortKey(entity.PatientColumnID),
			project: func(db *gorm.DB) *gorm.DB {
				return db.Select("patients.id, patients.last_name, patients.first_name, " +
					"COALESCE(patients.middle_name, '') AS middle_name, " +
					"patients.address, patients.birth_date, patients.sex, " +
					"COALESCE(patients.area_id, 0) AS area")
			},
		},
	}
}

func (r *patientReportRepository) GetReport(db *gorm.DB, sortColumn string, order pagination.SortOrder, params pagination.Params) (*pagination.PagedList[entity.PatientReport], error) {
	key := patientSortKey(entity.ResolvePatientColumn(sortColumn))
	return findPage[entity.PatientReport](db, r.source, key, order, params)
}

func patientSortKey(column entity.PatientColumn) clause.Column {
	const table = "patients"
	switch column {
	case entity.PatientColumnFirstName:
		return clause.Column{Table: table, Name: "first_name"}
	case entity.PatientColumnLastName:
		return clause.Column{Table: table, Name: "last_name"}
	case entity.PatientColumnMiddleName:
		return clause.Column{Table: table, Name: "middle_name"}
	case entity.PatientColumnAddress:
		return clause.Column{Table: table, Name: "address"}
	case entity.PatientColumnBirthDate:
		return clause.Column{Table: table, Name: "birth_date"}
	case entity.PatientColumnArea:
		return clause.Column{Table: table, Name: "area_id"}
	case entity.PatientColumnSex:
		return clause.Column{Table: table, Name: "sex"}
	default:
		return clause.Column{Table: table, Name: "id"}
	}
}
