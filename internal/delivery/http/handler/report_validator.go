package handler

import (
	"medical-api/internal/delivery/dto"
	"medical-api/internal/domain/entity"
	"medical-api/pkg/validator"
)

// ReportQueryValidator checks report parameters for one entity type.
type ReportQueryValidator interface {
	ValidateReportQuery(query *dto.ReportQuery) []string
}

type reportQueryValidator struct {
	validator *validator.CustomValidator
	isColumn  func(name string) bool
}

func NewDoctorReportValidator(v *validator.CustomValidator) ReportQueryValidator {
	return &reportQueryValidator{
		validator: v,
		isColumn: func(name string) bool {
			_, ok := entity.ParseDoctorColumn(name)
			return ok
		},
	}
}

func NewPatientReportValidator(v *validator.CustomValidator) ReportQueryValidator {
	return &reportQueryValidator{
		validator: v,
		isColumn: func(name string) bool {
			_, ok := entity.ParsePatientColumn(name)
			return ok
		},
	}
}

func (v *reportQueryValidator) ValidateReportQuery(query *dto.ReportQuery) []string {
	var messages []string
	if query.SortColumn != "" && !v.isColumn(query.SortColumn) {
		messages = append(messages, "Sort column is not a valid value")
	}
	if err := v.validator.Validate(query); err != nil {
		messages = append(messages, v.validator.FormatValidationErrors(err)...)
	}
	return messages
}
