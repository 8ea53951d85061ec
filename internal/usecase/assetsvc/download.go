package assetsvc

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/yourname/asset_lite/internal/models"
)

// Asset описывает открытый на чтение файл с вычисленными заголовками. Закрывает вызывающий.
type Asset struct {
	*os.File
	Name        string
	Size        int64
	ModTime     time.Time
	ContentType string
}

// Open находит файл rel под корнем и открывает его для потоковой отдачи.
func (s *Files) Open(rel string) (*Asset, error) {
	full, err := ResolvePath(s.Root, rel)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file %q: %w", rel, models.ErrNotFound)
		}
		return nil, fmt.Errorf("open %q: %w", rel, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat %q: %w", rel, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("file %q: %w", rel, models.ErrNotFound)
	}

	return &Asset{
		File:        f,
		Name:        info.Name(),
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		ContentType: ContentType(info.Name()),
	}, nil
}

// ResolvePath переводит относительный URL-путь в путь на диске внутри root.
// Пути с сегментом ".." отклоняются.
func ResolvePath(root, rel string) (string, error) {
	rel = strings.TrimPrefix(strings.ReplaceAll(rel, "\\", "/"), "/")
	if rel == "" {
		return "", fmt.Errorf("empty path: %w", models.ErrNotFound)
	}
	for _, seg := range strings.Split(rel, "/") {
		if seg == ".." {
			return "", fmt.Errorf("path %q: %w", rel, models.ErrInvalidPath)
		}
	}

	cleaned := path.Clean("/" + rel)
	return filepath.Join(root, filepath.FromSlash(cleaned)), nil
}
