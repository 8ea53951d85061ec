// Package assetproto описывает HTTP-протокол asset-сервера: пути, заголовки и значения по умолчанию.
package assetproto

// Маршруты REST API.
const (
	PathVersion        = "/version"
	PathUpdateVersion  = "/update-version"
	PathFiles          = "/files"
	PathDownloadPrefix = "/download/"
	PathProjects       = "/projects"
	PathContentFormat  = "%s/content/%s"
	PathProjectVersion = "%s/version/%s"
	PathProjectUpdate  = "%s/update-version/%s"
	PathHealth         = "/health"
)

// Заголовки, участвующие в кешировании и трассировке.
const (
	HeaderETag        = "ETag"
	HeaderIfNoneMatch = "If-None-Match"
	HeaderRequestID   = "X-Request-Id"
)

const (
	// DefaultVersion подставляется, когда версия не сохранена или не читается.
	DefaultVersion = "1.0.0"
	// DateLayout — формат поля lastUpdated.
	DateLayout = "2006-01-02"
)
