package resthttp

import (
	"log"
	"net/http"
)

func (s *Server) getVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Assets.Version())
}

// postUpdateVersion увеличивает patch-версию; новый ETag сразу инвалидирует клиентские кеши.
func (s *Server) postUpdateVersion(w http.ResponseWriter, r *http.Request) {
	rec := s.Assets.BumpVersion()
	log.Printf("rid=%s version bumped version=%s lastUpdated=%s", requestIDFromContext(r.Context()), rec.Version, rec.LastUpdated)

	writeJSON(w, http.StatusOK, rec)
}
