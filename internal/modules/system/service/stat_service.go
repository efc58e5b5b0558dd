package service

import (
	"runtime"

	moduledto "blog-server/internal/modules/system/dto"
	platformservice "blog-server/internal/platform/service"

	"go.uber.org/zap"
)

// DashboardStats 获取后台仪表盘统计数据
func (s *Service) DashboardStats() (*moduledto.DashboardStats, error) {
	articles, err := s.articleCounter.CountAll()
	if err != nil {
		s.Logger().Error("统计文章失败", zap.Error(err))
		return nil, platformservice.NewInternalError("统计文章数据失败")
	}

	withImage, err := s.articleCounter.CountWithImage()
	if err != nil {
		s.Logger().Error("统计文章图片失败", zap.Error(err))
		return nil, platformservice.NewInternalError("统计文章数据失败")
	}

	users, err := s.userCounter.CountAll()
	if err != nil {
		s.Logger().Error("统计用户失败", zap.Error(err))
		return nil, platformservice.NewInternalError("统计用户数据失败")
	}

	return &moduledto.DashboardStats{
		Articles:          articles,
		ArticlesWithImage: withImage,
		Users:             users,
		GoVersion:         runtime.Version(),
		NumGoroutine:      runtime.NumGoroutine(),
	}, nil
}
