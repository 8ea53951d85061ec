package resthttp

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/yourname/asset_lite/internal/config"
	"github.com/yourname/asset_lite/internal/repo"
	"github.com/yourname/asset_lite/internal/usecase/assetsvc"
)

type Server struct {
	Assets   assetsvc.Service
	Projects assetsvc.ProjectStorage
	Cfg      *config.Config
}

// NewServer конструктор
func NewServer(cfg *config.Config) (http.Handler, *Server, error) {
	assets, err := buildAssetService(cfg)
	if err != nil {
		return nil, nil, err
	}

	srv := &Server{
		Assets:   assets,
		Projects: repo.NewProjectStore(cfg.RootDir),
		Cfg:      cfg,
	}

	return srv.routes(), srv, nil
}

func buildAssetService(cfg *config.Config) (assetsvc.Service, error) {
	versions := repo.OpenVersionStore(filepath.Join(cfg.RootDir, cfg.VersionFile))

	return assetsvc.New(assetsvc.Deps{
		Versions:    versions,
		Root:        cfg.RootDir,
		VersionFile: cfg.VersionFile,
	})
}

// routes регистрирует API-обработчики; всё остальное отдаётся как статика из корня.
func (s *Server) routes() http.Handler {
	rtr := chi.NewRouter()
	rtr.Use(requestIDMiddleware, loggingMiddleware, middleware.Recoverer, s.staticFirst)

	rtr.Get("/version", s.getVersion)
	rtr.Post("/update-version", s.postUpdateVersion)
	rtr.Get("/files", s.getFiles)
	rtr.Get("/download/*", s.getDownload)
	rtr.Head("/download/*", s.getDownload)
	rtr.Get("/health", s.health)

	rtr.Get("/projects", s.getProjects)
	rtr.Get("/content/{projectID}", s.getProjectContent)
	rtr.Get("/version/{projectID}", s.getProjectVersion)
	rtr.Post("/update-version/{projectID}", s.postProjectUpdate)
	rtr.Post("/manual-update/{projectID}", s.postProjectUpdate)

	rtr.NotFound(s.staticFallback)

	return rtr
}
