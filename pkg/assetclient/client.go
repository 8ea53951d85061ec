// Package assetclient — HTTP-клиент asset-сервера.
package assetclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/yourname/asset_lite/pkg/assetproto"
)

// VersionRecord зеркалирует ответ /version.
type VersionRecord struct {
	Version     string `json:"version"`
	LastUpdated string `json:"lastUpdated"`
}

// FileEntry зеркалирует элемент списка /files.
type FileEntry struct {
	Name         string `json:"name"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
	LastModified string `json:"lastModified"`
	Type         string `json:"type"`
}

// FileList — ответ /files.
type FileList struct {
	VersionRecord
	Files   []FileEntry `json:"files"`
	Skipped []string    `json:"skipped,omitempty"`
}

// Project — элемент ответа /projects.
type Project struct {
	ID      string `json:"id"`
	Version string `json:"version"`
}

// ProjectContent — ответ /content/{id}.
type ProjectContent struct {
	Version string          `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// Health — ответ /health.
type Health struct {
	OK         bool   `json:"ok"`
	Version    string `json:"version"`
	Files      int    `json:"files"`
	TotalBytes int64  `json:"total_bytes"`
	TotalHuman string `json:"total_human"`
}

// Download — результат скачивания. При NotModified тело равно nil.
type Download struct {
	Body          io.ReadCloser
	NotModified   bool
	ETag          string
	ContentType   string
	ContentLength int64
}

// StatusError возвращается на любой неуспешный статус.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("asset server: %d %s", e.Status, e.Message)
}

type Client struct {
	base string
	c    *http.Client
}

// New создаёт клиента для сервера с адресом baseURL.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), c: hc}
}

// Version запрашивает текущую версию.
func (c *Client) Version(ctx context.Context) (VersionRecord, error) {
	var out VersionRecord
	if err := c.doJSON(ctx, http.MethodGet, c.base+assetproto.PathVersion, &out); err != nil {
		return out, err
	}
	return out, nil
}

// BumpVersion увеличивает patch-версию на сервере.
func (c *Client) BumpVersion(ctx context.Context) (VersionRecord, error) {
	var out VersionRecord
	if err := c.doJSON(ctx, http.MethodPost, c.base+assetproto.PathUpdateVersion, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Files возвращает версию и рекурсивный список файлов.
func (c *Client) Files(ctx context.Context) (FileList, error) {
	var out FileList
	if err := c.doJSON(ctx, http.MethodGet, c.base+assetproto.PathFiles, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Projects возвращает список проектов.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var out []Project
	if err := c.doJSON(ctx, http.MethodGet, c.base+assetproto.PathProjects, &out); err != nil {
		return out, err
	}
	return out, nil
}

// ProjectContent возвращает версию и data.json проекта.
func (c *Client) ProjectContent(ctx context.Context, id string) (ProjectContent, error) {
	var out ProjectContent
	u := fmt.Sprintf(assetproto.PathContentFormat, c.base, url.PathEscape(id))
	if err := c.doJSON(ctx, http.MethodGet, u, &out); err != nil {
		return out, err
	}
	return out, nil
}

// ProjectVersion возвращает версию проекта.
func (c *Client) ProjectVersion(ctx context.Context, id string) (string, error) {
	var out struct {
		Version string `json:"version"`
	}
	u := fmt.Sprintf(assetproto.PathProjectVersion, c.base, url.PathEscape(id))
	if err := c.doJSON(ctx, http.MethodGet, u, &out); err != nil {
		return "", err
	}
	return out.Version, nil
}

// BumpProject увеличивает версию проекта и возвращает новую.
func (c *Client) BumpProject(ctx context.Context, id string) (string, error) {
	var out struct {
		Version string `json:"version"`
	}
	u := fmt.Sprintf(assetproto.PathProjectUpdate, c.base, url.PathEscape(id))
	if err := c.doJSON(ctx, http.MethodPost, u, &out); err != nil {
		return "", err
	}
	return out.Version, nil
}

// Health запрашивает сводку по обслуживаемому корню.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var out Health
	if err := c.doJSON(ctx, http.MethodGet, c.base+assetproto.PathHealth, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Download скачивает файл по относительному пути. Непустой etag уходит в If-None-Match.
func (c *Client) Download(ctx context.Context, path, etag string) (*Download, error) {
	u := c.base + assetproto.PathDownloadPrefix + escapePath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if etag != "" {
		req.Header.Set(assetproto.HeaderIfNoneMatch, etag)
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return &Download{
			Body:          resp.Body,
			ETag:          resp.Header.Get(assetproto.HeaderETag),
			ContentType:   resp.Header.Get("Content-Type"),
			ContentLength: resp.ContentLength,
		}, nil
	case http.StatusNotModified:
		resp.Body.Close()
		return &Download{NotModified: true, ETag: resp.Header.Get(assetproto.HeaderETag)}, nil
	default:
		defer resp.Body.Close()
		return nil, readStatusError(resp)
	}
}

func (c *Client) doJSON(ctx context.Context, method, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return readStatusError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func readStatusError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(b, &body); err != nil || body.Error == "" {
		body.Error = strings.TrimSpace(string(b))
	}

	return &StatusError{Status: resp.StatusCode, Message: body.Error}
}

func escapePath(p string) string {
	segs := strings.Split(strings.TrimPrefix(p, "/"), "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
