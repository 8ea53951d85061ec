package resthttp

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yourname/asset_lite/pkg/httperrors"
)

type projectContentResp struct {
	Version string          `json:"version"`
	Data    json.RawMessage `json:"data"`
}

type projectVersionResp struct {
	Version string `json:"version"`
}

type projectUpdateResp struct {
	Success bool   `json:"success"`
	Version string `json:"version"`
}

func (s *Server) getProjects(w http.ResponseWriter, _ *http.Request) {
	projects, err := s.Projects.List()
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func (s *Server) getProjectContent(w http.ResponseWriter, r *http.Request) {
	version, data, err := s.Projects.Content(chi.URLParam(r, "projectID"))
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, projectContentResp{Version: version, Data: data})
}

func (s *Server) getProjectVersion(w http.ResponseWriter, r *http.Request) {
	version, err := s.Projects.Version(chi.URLParam(r, "projectID"))
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, projectVersionResp{Version: version})
}

func (s *Server) postProjectUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "projectID")
	version, err := s.Projects.Bump(id)
	if err != nil {
		httperrors.Write(w, err)
		return
	}
	log.Printf("rid=%s project version bumped project=%s version=%s", requestIDFromContext(r.Context()), id, version)

	writeJSON(w, http.StatusOK, projectUpdateResp{Success: true, Version: version})
}
