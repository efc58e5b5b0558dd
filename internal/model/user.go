package model

import "blog-server/internal/consts"

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"unique;not null;size:50"`
	Password string `json:"-" gorm:"not null"` // bcrypt 哈希
	Role     string `json:"role" gorm:"not null;size:50"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == consts.RoleAdmin
}
