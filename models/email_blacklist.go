package models

import (
	"strings"

	"golang.org/x/exp/slices"
)

// EmailBlacklist lists email domains (mostly disposable providers) that may
// not be used to provision accounts
type EmailBlacklist struct {
	ID          int
	EmailDomain string
}

func IsEmailInBlacklist(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	var blacklist []string
	DB.Model(&EmailBlacklist{}).Select("email_domain").Scan(&blacklist)
	return slices.Contains(blacklist, parts[1])
}
