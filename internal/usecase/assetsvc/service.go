package assetsvc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yourname/asset_lite/internal/models"
)

type (
	// VersionStorage хранит глобальную версию ассетов.
	VersionStorage interface {
		Get() models.VersionRecord
		Increment() models.VersionRecord
	}

	// ProjectStorage обслуживает версии и данные отдельных проектов.
	ProjectStorage interface {
		List() ([]models.Project, error)
		Version(id string) (string, error)
		Content(id string) (string, json.RawMessage, error)
		Bump(id string) (string, error)
	}

	// Service объединяет операции над версией, листингом и выдачей файлов.
	Service interface {
		Version() models.VersionRecord
		BumpVersion() models.VersionRecord
		List() (models.Listing, error)
		Open(rel string) (*Asset, error)
	}
)

type Deps struct {
	Versions    VersionStorage
	Root        string
	VersionFile string
}

type Files struct {
	Deps
}

// New конструирует сервис ассетов с заданными зависимостями.
func New(deps Deps) (*Files, error) {
	if strings.TrimSpace(deps.Root) == "" {
		return nil, fmt.Errorf("root dir is empty")
	}
	if deps.Versions == nil {
		return nil, fmt.Errorf("version storage is nil")
	}

	return &Files{Deps: deps}, nil
}

var _ Service = (*Files)(nil)

func (s *Files) Version() models.VersionRecord {
	return s.Versions.Get()
}

func (s *Files) BumpVersion() models.VersionRecord {
	return s.Versions.Increment()
}

// List обходит корень, исключая файл версии.
func (s *Files) List() (models.Listing, error) {
	exclude := map[string]struct{}{}
	if s.VersionFile != "" {
		exclude[s.VersionFile] = struct{}{}
	}

	return List(s.Root, exclude)
}
