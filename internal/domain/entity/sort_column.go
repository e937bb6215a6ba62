package entity

import "strings"

// DoctorColumn enumerates the doctor report columns a client may sort by.
type DoctorColumn int

const (
	DoctorColumnID DoctorColumn = iota
	DoctorColumnFirstName
	DoctorColumnLastName
	DoctorColumnMiddleName
	DoctorColumnRoom
	DoctorColumnSpecialization
	DoctorColumnArea
)

var doctorColumns = map[string]DoctorColumn{
	"id":             DoctorColumnID,
	"firstname":      DoctorColumnFirstName,
	"lastname":       DoctorColumnLastName,
	"middlename":     DoctorColumnMiddleName,
	"room":           DoctorColumnRoom,
	"specialization": DoctorColumnSpecialization,
	"area":           DoctorColumnArea,
}

// ParseDoctorColumn matches name case-insensitively against the doctor
// report columns.
func ParseDoctorColumn(name string) (DoctorColumn, bool) {
	column, ok := doctorColumns[strings.ToLower(strings.TrimSpace(name))]
	return column, ok
}

// ResolveDoctorColumn is ParseDoctorColumn falling back to the identifier.
func ResolveDoctorColumn(name string) DoctorColumn {
	column, ok := ParseDoctorColumn(name)
	if !ok {
		return DoctorColumnID
	}
	return column
}

// PatientColumn enumerates the patient report columns a client may sort by.
type PatientColumn int

const (
	PatientColumnID PatientColumn = iota
	PatientColumnFirstName
	PatientColumnLastName
	PatientColumnMiddleName
	PatientColumnAddress
	PatientColumnBirthDate
	PatientColumnArea
	PatientColumnSex
)

var patientColumns = map[string]PatientColumn{
	"id":         PatientColumnID,
	"firstname":  PatientColumnFirstName,
	"lastname":   PatientColumnLastName,
	"middlename": PatientColumnMiddleName,
	"address":    PatientColumnAddress,
	"birthdate":  PatientColumnBirthDate,
	"area":       PatientColumnArea,
	"sex":        PatientColumnSex,
}

func ParsePatientColumn(name string) (PatientColumn, bool) {
	column, ok := patientColumns[strings.ToLower(strings.TrimSpace(name))]
	return column, ok
}

func ResolvePatientColumn(name string) PatientColumn {
	column, ok := ParsePatientColumn(name)
	if !ok {
		return PatientColumnID
	}
	return column
}
