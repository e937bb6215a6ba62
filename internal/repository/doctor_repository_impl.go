package repository

import (
	"medical-api/internal/domain/entity"
	domainRepo "medical-api/internal/domain/repository"
	"medical-api/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &recordRepository[entity.Doctor]{}
}

type doctorReportRepository struct {
	source reportSource
}

func NewDoctorReportRepository() domainRepo.DoctorReportRepository {
	return &doctorReportRepository{
		source: reportSource{
			model: &entity.Doctor{},
			idKey: doctorSortKey(entity.DoctorColumnID),
			project: func(db *gorm.DB) *gorm.DB {
				return db.
					Select("doctors.id, doctors.last_name, doctors.first_name, " +
						"COALESCE(doctors.middle_name, '') AS middle_name, " +
						"COALESCE(doctors.room_id, 0) AS room, " +
						"COALESCE(specializations.title, '') AS specialization, " +
						"doctors.area_id AS area").
					Joins("LEFT JOIN specializations ON specializations.id = doctors.specialization_id")
			},
		},
	}
}

func (r *doctorReportRepository) GetReport(db *gorm.DB, sortColumn string, order pagination.SortOrder, params pagination.Params) (*pagination.PagedList[entity.DoctorReport], error) {
	key := doctorSortKey(entity.ResolveDoctorColumn(sortColumn))
	return findPage[entity.DoctorReport](db, r.source, key, order, params)
}

// doctorSortKey maps every doctor column to the SQL column it sorts by.
func doctorSortKey(column entity.DoctorColumn) clause.Column {
	const table = "doctors"
	switch column {
	case entity.DoctorColumnFirstName:
		return clause.Column{Table: table, Name: "first_name"}
	case entity.DoctorColumnLastName:
		return clause.Column{Table: table, Name: "last_name"}
	case entity.DoctorColumnMiddleName:
		return clause.Column{Table: table, Name: "middle_name"}
	case entity.DoctorColumnRoom:
		return clause.Column{Table: table, Name: "room_id"}
	case entity.DoctorColumnSpecialization:
		return clause.Column{Table: entity.Specialization{}.TableName(), Name: "title"}
	case entity.DoctorColumnArea:
		return clause.Column{Table: table, Name: "area_id"}
	default:
		return clause.Column{Table: table, Name: "id"}
	}
}
