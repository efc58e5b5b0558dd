package repo

import (
	"blog-server/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where(usernameCondition(r.db.Dialector.Name()), username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// usernameCondition MySQL 默认排序规则不区分大小写，需按二进制比较
func usernameCondition(dialect string) string {
	if dialect == "mysql" {
		return "username = BINARY ?"
	}
	return "username = ?"
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
