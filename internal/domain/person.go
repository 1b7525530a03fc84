package domain

// Person is a character of the catalog.
type Person struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:120;not null"`
	BirthYear string `json:"birth_year" gorm:"size:20"`
	Gender    string `json:"gender" gorm:"size:20"`
}

func (Person) TableName() string {
	return "people"
}
