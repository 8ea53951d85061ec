package assetsvc

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yourname/asset_lite/internal/models"
)

// List рекурсивно перечисляет обычные файлы под root, пропуская имена из exclude.
//
// Обход идёт по явному стеку каталогов, а не рекурсией. Нечитаемый root возвращает ошибку,
// нечитаемый подкаталог пропускается и попадает в Listing.Skipped.
// Результат идёт в порядке чтения каталогов, полагаться на него нельзя.
func List(root string, exclude map[string]struct{}) (models.Listing, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return models.Listing{}, fmt.Errorf("read root %s: %w", root, err)
	}

	out := models.Listing{Files: make([]models.FileEntry, 0, len(entries))}
	stack := []string{}
	stack = pushDirs(stack, "", collect(&out, root, "", entries, exclude))

	for len(stack) > 0 {
		rel := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			log.Printf("lister: skip dir=%s: %v", rel, err)
			out.Skipped = append(out.Skipped, rel)
			continue
		}
		stack = pushDirs(stack, rel, collect(&out, root, rel, entries, exclude))
	}

	return out, nil
}

// collect добавляет файлы каталога rel в out и возвращает имена подкаталогов.
func collect(out *models.Listing, root, rel string, entries []fs.DirEntry, exclude map[string]struct{}) []string {
	var dirs []string
	for _, e := range entries {
		name := e.Name()
		relPath := path.Join(rel, name)

		info, err := entryInfo(root, relPath, e)
		if err != nil {
			// Битый симлинк или файл, удалённый между ReadDir и Stat.
			log.Printf("lister: skip entry=%s: %v", relPath, err)
			continue
		}
		if info.IsDir() {
			// Симлинки на каталоги не обходим, чтобы не зациклиться.
			if e.Type()&fs.ModeSymlink == 0 {
				dirs = append(dirs, name)
			}
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		if _, skip := exclude[name]; skip {
			continue
		}

		out.Files = append(out.Files, models.FileEntry{
			Name:         name,
			Path:         relPath,
			Size:         info.Size(),
			LastModified: info.ModTime(),
			Type:         strings.TrimPrefix(filepath.Ext(name), "."),
		})
	}

	return dirs
}

// entryInfo возвращает метаданные записи, разыменовывая симлинки.
func entryInfo(root, relPath string, e fs.DirEntry) (fs.FileInfo, error) {
	if e.Type()&fs.ModeSymlink != 0 {
		return os.Stat(filepath.Join(root, filepath.FromSlash(relPath)))
	}
	return e.Info()
}

// pushDirs кладёт подкаталоги на стек в обратном порядке, чтобы первый был обработан первым.
func pushDirs(stack []string, parent string, dirs []string) []string {
	for i := len(dirs) - 1; i >= 0; i-- {
		stack = append(stack, path.Join(parent, dirs[i]))
	}
	return stack
}
