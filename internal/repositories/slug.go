package repositories

import (
	"regexp"
	"strings"

	"xestetik/internal/common"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func normalizeSlug(value string) string {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return ""
	}
	return strings.ToLower(cleaned)
}

// validSlug reports whether slug is usable both as a URL segment and as a
// directory name.
func validSlug(slug string) bool {
	return slug == normalizeSlug(slug) && slugPattern.MatchString(slug) && common.IsSafeIdentifier(slug)
}
