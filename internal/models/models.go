package models

import (
	"strings"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// SplitList разбирает строку вида "a,b,c" в срез, отбрасывая пустые элементы.
// Списки идентификаторов храним строкой через запятую.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList — обратная операция к SplitList.
func JoinList(items []string) string {
	return strings.Join(items, ",")
}
