package assetsvc

import "strings"

// ETag строит тег кеша из глобальной версии: смена версии инвалидирует все файлы сразу.
func ETag(version string) string {
	return `"` + version + `"`
}

// MatchesETag сообщает, совпадает ли заголовок If-None-Match с тегом.
// Поддерживаются списки через запятую, слабые теги W/"..." и "*".
func MatchesETag(ifNoneMatch, tag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == tag {
			return true
		}
	}
	return false
}
