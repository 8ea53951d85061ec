package resthttp

import (
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/yourname/asset_lite/pkg/httperrors"
)

// healthStats — payload ответа /health.
type healthStats struct {
	OK         bool   `json:"ok"`
	Version    string `json:"version"`
	Files      int    `json:"files"`
	TotalBytes int64  `json:"total_bytes"`
	TotalHuman string `json:"total_human"`
}

// health возвращает агрегированную статистику по обслуживаемому корню.
func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	listing, err := s.Assets.List()
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	total := listing.TotalBytes()
	writeJSON(w, http.StatusOK, healthStats{
		OK:         true,
		Version:    s.Assets.Version().Version,
		Files:      len(listing.Files),
		TotalBytes: total,
		TotalHuman: humanize.Bytes(uint64(total)),
	})
}
