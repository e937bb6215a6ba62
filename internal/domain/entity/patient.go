package entity

// Patient is a person registered in a service area.
type Patient struct {
	ID         int     `gorm:"primaryKey;autoIncrement" json:"id"`
	LastName   string  `gorm:"type:varchar(30);not null" json:"lastName"`
	FirstName  string  `gorm:"type:varchar(30);not null" json:"firstName"`
	MiddleName *string `gorm:"type:varchar(30)" json:"middleName"`
	Address    string  `gorm:"type:varchar(100);not null" json:"address"`
	BirthDate  Date    `gorm:"type:date;not null" json:"birthDate"`
	Sex        Sex     `gorm:"type:varchar(6);not null" json:"sex"`
	AreaID     *int    `gorm:"index" json:"areaId"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p Patient) Identifier() int {
	return p.ID
}
