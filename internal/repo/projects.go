package repo

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/yourname/asset_lite/internal/models"
	"github.com/yourname/asset_lite/pkg/assetproto"
)

const (
	projectVersionFile = "version.txt"
	projectDataFile    = "data.json"
)

var projectIDPattern = regexp.MustCompile(`^\d+$`)

// ProjectStore обслуживает числовые подкаталоги корня: у каждого свой version.txt и data.json.
type ProjectStore struct {
	mu       sync.Mutex
	root     string
	versions map[string]string
}

// NewProjectStore создаёт хранилище проектов поверх корневого каталога.
func NewProjectStore(root string) *ProjectStore {
	return &ProjectStore{
		root:     root,
		versions: map[string]string{},
	}
}

// List перечисляет проекты в порядке чтения каталога.
func (s *ProjectStore) List() ([]models.Project, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read projects root: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Project, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() || !projectIDPattern.MatchString(e.Name()) {
			continue
		}
		out = append(out, models.Project{
			ID:      e.Name(),
			Version: s.versionLocked(e.Name()),
		})
	}

	return out, nil
}

// Version возвращает версию проекта или models.ErrNotFound.
func (s *ProjectStore) Version(id string) (string, error) {
	if _, err := s.dir(id); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.versionLocked(id), nil
}

// Content возвращает версию проекта и разобранный data.json ({} при его отсутствии).
func (s *ProjectStore) Content(id string) (string, json.RawMessage, error) {
	dir, err := s.dir(id)
	if err != nil {
		return "", nil, err
	}

	data := json.RawMessage("{}")
	b, err := os.ReadFile(filepath.Join(dir, projectDataFile))
	switch {
	case err == nil:
		if !json.Valid(b) {
			return "", nil, fmt.Errorf("project %s: malformed %s", id, projectDataFile)
		}
		data = json.RawMessage(b)
	case !os.IsNotExist(err):
		return "", nil, fmt.Errorf("project %s: read data: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.versionLocked(id), data, nil
}

// Bump увеличивает patch-версию проекта и записывает её в version.txt.
func (s *ProjectStore) Bump(id string) (string, error) {
	dir, err := s.dir(id)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := models.NextPatch(s.versionLocked(id))
	s.versions[id] = next
	if err := os.WriteFile(filepath.Join(dir, projectVersionFile), []byte(next), 0o644); err != nil {
		log.Printf("project store: save version project=%s: %v", id, err)
	}

	return next, nil
}

// dir проверяет идентификатор и существование каталога проекта.
func (s *ProjectStore) dir(id string) (string, error) {
	if !projectIDPattern.MatchString(id) {
		return "", fmt.Errorf("project %q: %w", id, models.ErrNotFound)
	}

	dir := filepath.Join(s.root, id)
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return "", fmt.Errorf("project %q: %w", id, models.ErrNotFound)
	}

	return dir, nil
}

// versionLocked читает версию из кеша, при промахе подгружает version.txt.
func (s *ProjectStore) versionLocked(id string) string {
	if v, ok := s.versions[id]; ok {
		return v
	}

	v := assetproto.DefaultVersion
	if b, err := os.ReadFile(filepath.Join(s.root, id, projectVersionFile)); err == nil {
		if trimmed := strings.TrimSpace(string(b)); trimmed != "" {
			v = trimmed
		}
	}
	s.versions[id] = v

	return v
}
