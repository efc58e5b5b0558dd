package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"blog-server/internal/model"
	platformservice "blog-server/internal/platform/service"
	"blog-server/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Session 登录成功后签发的会话
type Session struct {
	Token  string
	Claims *utils.SessionClaims
	MaxAge time.Duration
	User   *model.User
}

// dummyPasswordHash 用户不存在时参与比对，使响应耗时与密码错误一致
var dummyPasswordHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("blog-server-dummy-password"), bcrypt.DefaultCost)
	return hash
})

// Authenticate 校验用户名与密码，仅管理员可登录
func (s *Service) Authenticate(username, password string) (*model.User, error) {
	user, err := s.userStore.FindByUsername(username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.Logger().Error("查询用户失败", zap.String("username", username), zap.Error(err))
			return nil, platformservice.NewInternalError("登录失败，请稍后重试")
		}
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(password))
		return nil, platformservice.NewUnauthorizedError("访问被拒绝")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, platformservice.NewUnauthorizedError("访问被拒绝")
	}
	if !user.IsAdmin() {
		return nil, platformservice.NewUnauthorizedError("访问被拒绝")
	}
	return user, nil
}

// Login 校验凭据并签发会话令牌
func (s *Service) Login(username, password string) (*Session, error) {
	user, err := s.Authenticate(username, password)
	if err != nil {
		return nil, err
	}

	cfg := s.Config().Session
	duration := time.Duration(cfg.ExpirationHours) * time.Hour
	if duration <= 0 {
		duration = 24 * time.Hour
	}

	token, claims, err := utils.GenerateSessionToken([]byte(cfg.Secret), user.ID, user.Role, duration)
	if err != nil {
		s.Logger().Error("签发会话令牌失败", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, platformservice.NewInternalError("登录失败，请稍后重试")
	}

	s.Logger().Info("管理员登录", zap.String("username", user.Username))
	return &Session{Token: token, Claims: claims, MaxAge: duration, User: user}, nil
}

// ResolveSession 解析会话令牌；签名无效、已注销或用户不存在时返回 false
func (s *Service) ResolveSession(ctx context.Context, token string) (*model.User, *utils.SessionClaims, bool) {
	claims, err := utils.ParseSessionToken([]byte(s.Config().Session.Secret), token)
	if err != nil {
		return nil, nil, false
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.Logger().Warn("查询会话吊销状态失败", zap.Error(err))
		return nil, nil, false
	}
	if revoked {
		return nil, nil, false
	}

	user, err := s.userStore.FindByID(claims.UserID)
	if err != nil {
		return nil, nil, false
	}
	return user, claims, true
}

// Logout 吊销会话直至其原有过期时间
func (s *Service) Logout(ctx context.Context, claims *utils.SessionClaims) error {
	if claims == nil {
		return nil
	}
	if err := s.revocations.Revoke(ctx, claims.ID, claims.Remaining()); err != nil {
		s.Logger().Error("吊销会话失败", zap.String("jti", claims.ID), zap.Error(err))
		return platformservice.NewInternalError("注销失败")
	}
	return nil
}
