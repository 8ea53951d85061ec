package models

import "time"

// FileEntry описывает один файл под обслуживаемым корнем.
type FileEntry struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
	Type         string    `json:"type"`
}

// Listing содержит результат рекурсивного обхода корня.
// Skipped содержит относительные пути каталогов, которые не удалось прочитать.
type Listing struct {
	Files   []FileEntry
	Skipped []string
}

// TotalBytes суммирует размеры всех найденных файлов.
func (l Listing) TotalBytes() int64 {
	var total int64
	for _, f := range l.Files {
		total += f.Size
	}
	return total
}
