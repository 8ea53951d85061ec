package resthttp

import (
	"net/http"

	"github.com/yourname/asset_lite/internal/models"
	"github.com/yourname/asset_lite/pkg/httperrors"
)

// getFilesResp — версия вместе с рекурсивным списком файлов корня.
type getFilesResp struct {
	models.VersionRecord
	Files   []models.FileEntry `json:"files"`
	Skipped []string           `json:"skipped,omitempty"`
}

func (s *Server) getFiles(w http.ResponseWriter, _ *http.Request) {
	listing, err := s.Assets.List()
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, getFilesResp{
		VersionRecord: s.Assets.Version(),
		Files:         listing.Files,
		Skipped:       listing.Skipped,
	})
}
