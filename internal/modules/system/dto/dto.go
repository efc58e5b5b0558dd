package dto

// DashboardStats 后台概览统计
type DashboardStats struct {
	Articles          int64  `json:"articles"`
	ArticlesWithImage int64  `json:"articles_with_image"`
	Users             int64  `json:"users"`
	GoVersion         string `json:"go_version"`
	NumGoroutine      int    `json:"num_goroutine"`
}
