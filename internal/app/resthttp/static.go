package resthttp

import (
	"net/http"
	"os"

	"github.com/yourname/asset_lite/internal/usecase/assetsvc"
	"github.com/yourname/asset_lite/pkg/httperrors"
)

func isReadMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

// staticFirst отдаёт существующий файл из корня раньше API-маршрутов,
// поэтому root/version/app.js не перехватывается /version/{projectID}.
func (s *Server) staticFirst(next http.Handler) http.Handler {
	files := http.FileServer(http.Dir(s.Cfg.RootDir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isReadMethod(r.Method) {
			if full, err := assetsvc.ResolvePath(s.Cfg.RootDir, r.URL.Path); err == nil {
				if fi, err := os.Stat(full); err == nil && fi.Mode().IsRegular() {
					files.ServeHTTP(w, r)
					return
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

// staticFallback обслуживает всё, что не совпало с маршрутами: каталоги (index.html) и 404.
// Статика доступна только на чтение.
func (s *Server) staticFallback(w http.ResponseWriter, r *http.Request) {
	if !isReadMethod(r.Method) {
		w.Header().Set("Allow", "GET, HEAD")
		httperrors.WriteStatus(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	http.FileServer(http.Dir(s.Cfg.RootDir)).ServeHTTP(w, r)
}
