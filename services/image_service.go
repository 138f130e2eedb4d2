package services

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageService stores listing images under a local uploads directory that
// is served statically and fronted by PUBLIC_ASSET_HOST. Deletions are
// best-effort: the database row is the source of truth and a dangling
// file must never fail a request.
type ImageService struct {
	baseDir    string
	publicHost string
}

func NewImageService() *ImageService {
	dir := strings.TrimSpace(os.Getenv("UPLOADS_DIR"))
	if dir == "" {
		dir = "uploads"
	}
	return &ImageService{
		baseDir:    dir,
		publicHost: strings.TrimRight(strings.TrimSpace(os.Getenv("PUBLIC_ASSET_HOST")), "/"),
	}
}

// NewImageServiceAt builds a service rooted at an explicit directory and
// host, for tests.
func NewImageServiceAt(baseDir, publicHost string) *ImageService {
	return &ImageService{baseDir: baseDir, publicHost: strings.TrimRight(publicHost, "/")}
}

// SaveBase64 decodes a data-URI or raw base64 payload, writes it under
// uploads/<kind>/ and returns the public URL to store on the listing.
func (s *ImageService) SaveBase64(b64 string, kind string) (string, error) {
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	kind = sanitizeKind(kind)
	dir := filepath.Join(s.baseDir, kind)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := uuid.NewString() + ".jpg"
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return s.PublicURL(path.Join(kind, filename)), nil
}

// PublicURL maps a storage key ("hotels/abc.jpg") to the URL clients see.
func (s *ImageService) PublicURL(key string) string {
	return s.publicHost + "/uploads/" + key
}

// KeyForURL maps a stored image URL back to an uploads key. Only URLs on
// the known asset host (or host-less /uploads paths) can be resolved;
// anything else is skipped because the object cannot safely be located.
func (s *ImageService) KeyForURL(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	if u.Host != "" {
		hostURL, err := url.Parse(s.publicHost)
		if err != nil || s.publicHost == "" || u.Host != hostURL.Host {
			return "", false
		}
	}
	p := path.Clean(u.Path)
	if !strings.HasPrefix(p, "/uploads/") {
		return "", false
	}
	key := strings.TrimPrefix(p, "/uploads/")
	if key == "" || strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}

// Delete removes a stored object by key.
func (s *ImageService) Delete(key string) error {
	return os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(key)))
}

// RemovedURLs diffs an old image list against a new one and returns the
// URLs no longer referenced, in their original order.
func RemovedURLs(old, updated []string) []string {
	keep := make(map[string]bool, len(updated))
	for _, u := range updated {
		keep[u] = true
	}
	var removed []string
	for _, u := range old {
		if !keep[u] {
			removed = append(removed, u)
		}
	}
	return removed
}

// CleanupURLs attempts to delete every given URL from storage. Failures
// are logged and swallowed; they are accepted as eventual cleanup debt.
func (s *ImageService) CleanupURLs(urls []string) {
	for _, raw := range urls {
		key, ok := s.KeyForURL(raw)
		if !ok {
			log.Printf("warning: cannot resolve image url to a storage key, skipping: %s", raw)
			continue
		}
		if err := s.Delete(key); err != nil && !os.IsNotExist(err) {
			log.Printf("warning: failed to delete image %s: %v", key, err)
		}
	}
}

func sanitizeKind(kind string) string {
	kind = strings.Trim(path.Clean("/"+kind), "/")
	if kind == "" || kind == "." {
		return "listings"
	}
	return kind
}
