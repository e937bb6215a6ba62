package entity

// Room is a consulting room; doctors may be assigned to one.
type Room struct {
	ID int `gorm:"primaryKey" json:"id"`
}

func (Room) TableName() string {
	return "rooms"
}

// Area is a numbered medical service zone.
type Area struct {
	ID int `gorm:"primaryKey" json:"id"`
}

func (Area) TableName() string {
	return "areas"
}

type Specialization struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Title string `gorm:"type:varchar(50);not null" json:"title"`
}

func (Specialization) TableName() string {
	return "specializations"
}
