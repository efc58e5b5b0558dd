package service

import (
	"errors"
	"strings"

	"blog-server/internal/consts"
	"blog-server/internal/model"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureAdmin 按配置创建管理员账号；用户名或密码为空、账号已存在时跳过
func (s *Service) EnsureAdmin(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil
	}

	_, err := s.userStore.FindByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.userStore.Create(&model.User{Username: username, Password: string(hashed), Role: consts.RoleAdmin}); err != nil {
		return err
	}
	s.Logger().Info("已创建管理员账号", zap.String("username", username))
	return nil
}
