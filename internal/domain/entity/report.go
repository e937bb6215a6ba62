package entity

// DoctorReport is one row of the doctors report.
type DoctorReport struct {
	ID             int    `json:"id"`
	LastName       string `json:"lastName"`
	FirstName      string `json:"firstName"`
	MiddleName     string `json:"middleName"`
	Room           int    `json:"room"`
	Specialization string `json:"specialization"`
	Area           *int   `json:"area"`
}

// PatientReport is one row of the patients report.
type PatientReport struct {
	ID         int    `json:"id"`
	LastName   string `json:"lastName"`
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	Address    string `json:"address"`
	BirthDate  Date   `json:"birthDate"`
	Sex        Sex    `json:"sex"`
	Area       int    `json:"area"`
}
