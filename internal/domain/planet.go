package domain

type Planet struct {
	ID         int64  `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"size:120;not null"`
	Population string `json:"population" gorm:"size:20"`
}

func (Planet) TableName() string {
	return "planets"
}
