package assets

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"sitecast/config"
	"sitecast/types"
)

var domainCleaner = regexp.MustCompile(`[^a-z0-9.-]`)

// Store persists downloaded assets under a public root laid out as
// public/images and public/audio. Filenames are domain- or
// timestamp-qualified so concurrent pipeline runs never collide and no
// locking is needed. An optional Mirror copies every write to S3.
type Store struct {
	root   string
	mirror *Mirror
	client *http.Client
}

// NewStore creates the asset store rooted at root. mirror may be nil.
func NewStore(root string, mirror *Mirror) *Store {
	return &Store{
		root:   root,
		mirror: mirror,
		client: &http.Client{Timeout: config.AudioDownloadTimeout},
	}
}

// SaveLogo downloads logoURL and persists it as
// images/logo-{domain}.{ext}, with the extension sniffed from the
// response content type (falling back to the URL). Returns the static
// path relative to the public root.
func (s *Store) SaveLogo(ctx context.Context, logoURL, domain string) (string, error) {
	if logoURL == "" {
		return "", fmt.Errorf("no logo URL to download")
	}

	dlCtx, cancel := context.WithTimeout(ctx, config.LogoDownloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(dlCtx, http.MethodGet, logoURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build logo request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("logo download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("logo download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read logo body: %w", err)
	}

	ext := extFromContentType(resp.Header.Get("Content-Type"), logoURL)
	cleanDomain := domainCleaner.ReplaceAllString(strings.TrimPrefix(strings.ToLower(domain), "www."), "")
	fileName := fmt.Sprintf("logo-%s.%s", cleanDomain, ext)

	staticPath, err := s.write(config.ImagesDir, fileName, data, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	log.Printf("✓ Logo saved: %s", staticPath)
	return staticPath, nil
}

// SaveAudioBytes persists raw audio bytes as audio/{prefix}-{timestamp}.mp3.
func (s *Store) SaveAudioBytes(data []byte, prefix string) (types.AudioAsset, error) {
	fileName := fmt.Sprintf("%s-%d.mp3", prefix, time.Now().UnixMilli())

	staticPath, err := s.write(config.AudioDir, fileName, data, "audio/mpeg")
	if err != nil {
		return types.AudioAsset{}, err
	}

	localPath, err := filepath.Abs(filepath.Join(s.root, staticPath))
	if err != nil {
		localPath = filepath.Join(s.root, staticPath)
	}

	log.Printf("✓ Audio saved: %s (%d bytes)", staticPath, len(data))
	return types.AudioAsset{LocalPath: localPath, StaticPath: staticPath}, nil
}

// write stores data under root/subdir/fileName and mirrors it when a
// mirror is configured. Mirror failures are logged, never fatal.
func (s *Store) write(subdir, fileName string, data []byte, contentType string) (string, error) {
	dir := filepath.Join(s.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	fullPath := filepath.Join(dir, fileName)
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", fullPath, err)
	}

	staticPath := subdir + "/" + fileName
	if s.mirror != nil {
		if err := s.mirror.Upload(context.Background(), staticPath, data, contentType); err != nil {
			log.Printf("✗ S3 mirror failed for %s: %v", staticPath, err)
		}
	}
	return staticPath, nil
}

func extFromContentType(contentType, sourceURL string) string {
	contentType = strings.ToLower(contentType)
	switch {
	case strings.Contains(contentType, "svg"):
		return "svg"
	case strings.Contains(contentType, "jpeg"), strings.Contains(contentType, "jpg"):
		return "jpg"
	case strings.Contains(contentType, "png"):
		return "png"
	}

	lower := strings.ToLower(sourceURL)
	switch {
	case strings.HasSuffix(lower, ".svg"):
		return "svg"
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "jpg"
	}
	return "png"
}
