package model

import "time"

type Article struct {
	ID    uint      `json:"id" gorm:"primaryKey"`
	Title string    `json:"title" gorm:"size:100;not null"`
	Intro string    `json:"intro" gorm:"size:300;not null"`
	Text  string    `json:"text" gorm:"type:text;not null"`
	Date  time.Time `json:"date" gorm:"not null;index;autoCreateTime"`
	Image string    `json:"image" gorm:"size:255"` // 上传目录中的文件名，空表示无图片
}

// HasImage 是否引用了上传目录中的文件
func (a *Article) HasImage() bool {
	return a != nil && a.Image != ""
}
