package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/yourname/asset_lite/pkg/assetproto"
)

// VersionRecord хранится в version.json и описывает текущую версию ассетов.
type VersionRecord struct {
	Version     string `json:"version"`
	LastUpdated string `json:"lastUpdated"`
}

// DefaultVersionRecord возвращает запись, которой заменяется отсутствующий или битый файл версии.
func DefaultVersionRecord(now time.Time) VersionRecord {
	return VersionRecord{
		Version:     assetproto.DefaultVersion,
		LastUpdated: now.Format(assetproto.DateLayout),
	}
}

// Bumped возвращает копию записи с увеличенным patch-сегментом и датой now.
func (v VersionRecord) Bumped(now time.Time) VersionRecord {
	return VersionRecord{
		Version:     NextPatch(v.Version),
		LastUpdated: now.Format(assetproto.DateLayout),
	}
}

// NextPatch увеличивает третий сегмент MAJOR.MINOR.PATCH на единицу.
// Отсутствующие и нечисловые сегменты считаются нулём: "1.2" -> "1.2.1".
func NextPatch(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		version = assetproto.DefaultVersion
	}

	segs := strings.Split(version, ".")
	for len(segs) < 3 {
		segs = append(segs, "0")
	}

	patch, err := strconv.Atoi(segs[2])
	if err != nil || patch < 0 {
		patch = 0
	}
	segs[2] = strconv.Itoa(patch + 1)

	return strings.Join(segs, ".")
}

// Project описывает числовой подкаталог корня со своим version.txt.
type Project struct {
	ID      string `json:"id"`
	Version string `json:"version"`
}
