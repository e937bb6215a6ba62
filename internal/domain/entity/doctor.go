package entity

// Doctor is a member of the medical staff. Room, specialization and area
// references are optional and are cleared by the store when the referenced
// row is deleted.
type Doctor struct {
	ID               int     `gorm:"primaryKey;autoIncrement" json:"id"`
	LastName         string  `gorm:"type:varchar(30);not null" json:"lastName"`
	FirstName        string  `gorm:"type:varchar(30);not null" json:"firstName"`
	MiddleName       *string `gorm:"type:varchar(30)" json:"middleName"`
	RoomID           *int    `gorm:"index" json:"roomId"`
	SpecializationID *int    `gorm:"index" json:"specializationId"`
	AreaID           *int    `gorm:"index" json:"areaId"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d Doctor) Identifier() int {
	return d.ID
}
