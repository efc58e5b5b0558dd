package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// windowsDeviceNames 在 Windows 上不能作为文件名使用
var windowsDeviceNames = map[string]bool{
	"CON": true, "AUX": true, "COM1": true, "COM2": true, "COM3": true, "COM4": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "PRN": true, "NUL": true,
}

// SanitizeFilename 去掉路径部分与不安全字符，返回可直接落盘的文件名。
//
// 非 ASCII 字符先做 NFKD 分解再丢弃（é -> e），空白替换为 "_"，
// 只保留字母、数字、"_"、"."、"-"，并去掉首尾的 "." 与 "_"。
// 结果可能为空字符串，调用方需自行处理。
func SanitizeFilename(filename string) string {
	if i := strings.LastIndexAny(filename, `/\`); i >= 0 {
		filename = filename[i+1:]
	}

	var b strings.Builder
	lastUnderscore := false
	for _, r := range norm.NFKD.String(filename) {
		switch {
		case r > unicode.MaxASCII:
			continue
		case unicode.IsSpace(r):
			if !lastUnderscore {
				b.WriteByte('_')
			}
			lastUnderscore = true
			continue
		case r == '_' || r == '.' || r == '-' ||
			('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9'):
			b.WriteRune(r)
		}
		lastUnderscore = r == '_'
	}

	name := strings.Trim(b.String(), "._")
	if windowsDeviceNames[strings.ToUpper(strings.SplitN(name, ".", 2)[0])] {
		name = "_" + name
	}
	return name
}

// FileExtension 返回最后一个 "." 之后的小写扩展名；没有 "." 时返回空字符串
func FileExtension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

// IsAllowedExtension 判断文件扩展名是否在白名单内（白名单元素为不带点的小写扩展名）
func IsAllowedExtension(filename string, allowed []string) bool {
	ext := FileExtension(filename)
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if a == ext {
			return true
		}
	}
	return false
}
