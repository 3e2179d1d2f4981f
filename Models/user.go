package Models

import "gorm.io/gorm"

// User is an operator account. Permission levels: 1 viewer, 2 operator,
// 3 supervisor, 4 admin.
type User struct {
	gorm.Model
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"uniqueIndex;size:255"`
	Password   []byte `json:"-"`
	Permission int    `json:"permission"`
	EmpresaID  *uint  `json:"empresa_id"`
}

func (User) TableName() string {
	return "usuarios"
}
