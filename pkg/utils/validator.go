package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-z0-9_]+$`)
	emailRegex    = regexp.MustCompile(`^[\w\.-]+@[\w\.-]+\.\w+$`)
)

// IsValidUsername 用户名3~15位，仅小写字母数字下划线
func IsValidUsername(username string) bool {
	if utf8.RuneCountInString(username) < 3 || utf8.RuneCountInString(username) > 15 {
		return false
	}
	return usernameRegex.MatchString(username)
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// SplitTags 逗号分隔的可选分类，去空白、去空项、去重，保持出现顺序
func SplitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return tags
}
