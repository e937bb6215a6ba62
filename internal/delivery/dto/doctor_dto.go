package dto

import "medical-api/internal/domain/entity"

// DoctorRequest is the payload of the doctor Add and Edit endpoints.
type DoctorRequest struct {
	ID               int    `json:"id" label:"Id" validate:"gte=0"`
	LastName         string `json:"lastName" label:"Last name" validate:"required,max=30"`
	FirstName        string `json:"firstName" label:"First name" validate:"required,max=30"`
	MiddleName       string `json:"middleName" label:"Middle name" validate:"max=30"`
	Room             int    `json:"room" label:"Room" validate:"gt=0"`
	SpecializationID int    `json:"specializationId" label:"Specialization ID" validate:"gt=0"`
	Area             *int   `json:"area" label:"Area" validate:"omitempty,gt=0"`
}

func (r *DoctorRequest) Identifier() int {
	return r.ID
}

// ToEntity maps the payload onto a record with the given identifier.
func (r *DoctorRequest) ToEntity(id int) *entity.Doctor {
	room := r.Room
	specializationID := r.SpecializationID
	return &entity.Doctor{
		ID:               id,
		LastName:         r.LastName,
		FirstName:        r.FirstName,
		MiddleName:       optionalString(r.MiddleName),
		RoomID:           &room,
		SpecializationID: &specializationID,
		AreaID:           copyInt(r.Area),
	}
}
