package resthttp

import (
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yourname/asset_lite/internal/usecase/assetsvc"
	"github.com/yourname/asset_lite/pkg/assetproto"
	"github.com/yourname/asset_lite/pkg/httperrors"
)

// getDownload отдаёт файл из корня с ETag по глобальной версии.
func (s *Server) getDownload(w http.ResponseWriter, r *http.Request) {
	rel := chi.URLParam(r, "*")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(rel); err == nil {
			rel = unescaped
		}
	}
	if rel == "" {
		httperrors.WriteStatus(w, http.StatusNotFound, "file path is required")
		return
	}

	asset, err := s.Assets.Open(rel)
	if err != nil {
		httperrors.Write(w, err)
		return
	}
	defer asset.Close()

	tag := assetsvc.ETag(s.Assets.Version().Version)
	h := w.Header()
	h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", s.Cfg.CacheMaxAge))
	h.Set(assetproto.HeaderETag, tag)

	if assetsvc.MatchesETag(r.Header.Get(assetproto.HeaderIfNoneMatch), tag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	h.Set("Content-Type", asset.ContentType)
	h.Set("Content-Length", strconv.FormatInt(asset.Size, 10))
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": asset.Name}))
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}

	// Заголовки уже ушли: обрыв потока только логируем, клиент получит усечённый ответ.
	if _, err := io.Copy(w, asset); err != nil {
		log.Printf("rid=%s download path=%s: %v", requestIDFromContext(r.Context()), rel, err)
	}
}
