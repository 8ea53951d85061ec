package repo

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/yourname/asset_lite/internal/models"
)

// VersionStore владеет записью версии в памяти и её копией на диске (version.json).
// Все изменения проходят через мьютекс, поэтому параллельные Increment не теряют обновления.
type VersionStore struct {
	mu      sync.Mutex
	path    string
	now     func() time.Time
	current models.VersionRecord
}

// OpenVersionStore создаёт хранилище поверх файла path и сразу загружает текущую запись.
func OpenVersionStore(path string) *VersionStore {
	return newVersionStore(path, time.Now)
}

func newVersionStore(path string, now func() time.Time) *VersionStore {
	s := &VersionStore{path: path, now: now}
	s.current = s.load()
	return s
}

// Get возвращает текущую запись.
func (s *VersionStore) Get() models.VersionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Increment увеличивает patch-версию, обновляет дату и сохраняет запись на диск.
// Ошибка записи только логируется: в памяти остаётся новая версия.
func (s *VersionStore) Increment() models.VersionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Bumped(s.now())
	s.current = next
	if err := s.save(next); err != nil {
		log.Printf("version store: save path=%s: %v", s.path, err)
	}

	return next
}

// load читает version.json; при отсутствии файла или ошибке разбора возвращает запись по умолчанию.
func (s *VersionStore) load() models.VersionRecord {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("version store: read path=%s: %v", s.path, err)
		}
		return models.DefaultVersionRecord(s.now())
	}

	var rec models.VersionRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		log.Printf("version store: parse path=%s: %v", s.path, err)
		return models.DefaultVersionRecord(s.now())
	}

	// Пустая версия бесполезна как ETag, считаем такой файл битым.
	if strings.TrimSpace(rec.Version) == "" {
		return models.DefaultVersionRecord(s.now())
	}
	if rec.LastUpdated == "" {
		rec.LastUpdated = models.DefaultVersionRecord(s.now()).LastUpdated
	}

	return rec
}

// save перезаписывает version.json отформатированным JSON.
func (s *VersionStore) save(rec models.VersionRecord) error {
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal version: %w", err)
	}

	return os.WriteFile(s.path, b, 0o644)
}
