package dto

import "medical-api/internal/domain/entity"

// PatientRequest is the payload of the patient Add and Edit endpoints.
type PatientRequest struct {
	ID         int         `json:"id" label:"Id" validate:"gte=0"`
	LastName   string      `json:"lastName" label:"Last name" validate:"required,max=30"`
	FirstName  string      `json:"firstName" label:"First name" validate:"required,max=30"`
	MiddleName string      `json:"middleName" label:"Middle name" validate:"max=30"`
	Address    string      `json:"address" label:"Address" validate:"required,max=100"`
	BirthDate  entity.Date `json:"birthDate" label:"Date of birth" validate:"required,notfuture"`
	Sex        entity.Sex  `json:"sex" label:"Sex" validate:"oneof=male female"`
	Area       int         `json:"area" label:"Area" validate:"gt=0"`
}

func (r *PatientRequest) Identifier() int {
	return r.ID
}

// ToEntity maps the payload onto a record with the given identifier.
func (r *PatientRequest) ToEntity(id int) *entity.Patient {
	area := r.Area
	return &entity.Patient{
		ID:         id,
		LastName:   r.LastName,
		FirstName:  r.FirstName,
		MiddleName: optionalString(r.MiddleName),
		Address:    r.Address,
		BirthDate:  r.BirthDate,
		Sex:        r.Sex,
		AreaID:     &area,
	}
}
