package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"

	"blog-server/internal/utils"
)

// UploadStore 管理上传目录中的文章图片，文件按清洗后的文件名平铺存放
type UploadStore struct {
	root    string
	allowed []string
}

func NewUploadStore(root string, allowedExtensions []string) *UploadStore {
	if root == "" {
		root = "uploads/images"
	}
	return &UploadStore{root: root, allowed: allowedExtensions}
}

func (s *UploadStore) Root() string {
	return s.root
}

// Accept 返回上传文件落盘时使用的文件名。
// 扩展名不在白名单内或清洗后为空时返回 false，调用方应静默跳过该文件。
func (s *UploadStore) Accept(filename string) (string, bool) {
	if !utils.IsAllowedExtension(filename, s.allowed) {
		return "", false
	}
	name := utils.SanitizeFilename(filename)
	if name == "" || !utils.IsAllowedExtension(name, s.allowed) {
		return "", false
	}
	return name, true
}

// Save 保存上传文件，返回存储的文件名；被跳过时返回空字符串且 err 为 nil。
// 同名文件会被覆盖。
func (s *UploadStore) Save(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", nil
	}
	name, ok := s.Accept(file.Filename)
	if !ok {
		return "", nil
	}

	if err := os.MkdirAll(s.root, 0755); err != nil {
		return "", fmt.Errorf("创建上传目录失败: %w", err)
	}
	dst, err := utils.SecureJoin(s.root, name)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("读取上传文件失败: %w", err)
	}
	defer func() { _ = src.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("创建文件失败: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("写入文件失败: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("写入文件失败: %w", err)
	}
	return name, nil
}

// Remove 删除文件，文件不存在时不报错
func (s *UploadStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	path, err := utils.SecureJoin(s.root, name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *UploadStore) Exists(name string) bool {
	if name == "" {
		return false
	}
	path, err := utils.SecureJoin(s.root, name)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
