package domain

// User is an account that owns favorites. Password is stored as given and never serialized.
type User struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	Email     string     `json:"email" gorm:"size:120;not null;uniqueIndex" validate:"required,email"`
	Password  string     `json:"-" gorm:"size:80;not null"`
	IsActive  bool       `json:"is_active" gorm:"not null"`
	Favorites []Favorite `json:"favorites,omitempty" gorm:"-"`
}

// NewUser returns an active user. IsActive has no column default, so an
// explicit false is stored as given.
func NewUser(email, password string) *User {
	return &User{Email: email, Password: password, IsActive: true}
}

func (User) TableName() string {
	return "users"
}
