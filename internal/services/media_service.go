package services

import (
	"context"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"xestetik/internal/common"
	"xestetik/internal/models"

	"go.uber.org/zap"
)

// HeroVideoBase is the local video used on the home page when no override
// URL is configured.
const HeroVideoBase = "hero"

const (
	remoteListTimeout = 3 * time.Second
	presignExpiry     = time.Hour
)

var remoteVideoExtensions = map[string]bool{".mp4": true, ".mov": true, ".m4v": true, ".webm": true}

// RemoteMedia lists the clips hosted outside the static directory.
type RemoteMedia interface {
	List(ctx context.Context) ([]models.MediaItem, error)
}

// MediaService composes the video showcase.
type MediaService interface {
	// List returns local clips ordered by file name followed by remote clips
	// in source order. A remote clip whose stem matches a local one is dropped.
	List(ctx context.Context) []models.MediaItem
	// HeroVideo returns the override URL if set, else the local "hero" clip, else "".
	HeroVideo() string
}

type mediaService struct {
	assets       AssetService
	remote       RemoteMedia
	heroOverride string
}

func NewMediaService(assets AssetService, remote RemoteMedia, heroOverride string) MediaService {
	return &mediaService{assets: assets, remote: remote, heroOverride: strings.TrimSpace(heroOverride)}
}

func (s *mediaService) List(ctx context.Context) []models.MediaItem {
	// The hero clip plays on the home page only.
	seen := map[string]bool{common.NormalizeName(HeroVideoBase): true}
	items := []models.MediaItem{}

	for _, v := range s.assets.ListVideos() {
		key := common.NormalizeName(v.Stem)
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, models.MediaItem{Title: v.Stem, URL: v.URL, Source: models.MediaSourceLocal})
	}

	if s.remote == nil {
		return items
	}

	ctx, cancel := context.WithTimeout(ctx, remoteListTimeout)
	defer cancel()
	remote, err := s.remote.List(ctx)
	if err != nil {
		zap.L().Warn("remote media listing failed", zap.Error(err))
		return items
	}
	for _, item := range remote {
		key := common.NormalizeName(item.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, item)
	}
	return items
}

func (s *mediaService) HeroVideo() string {
	if s.heroOverride != "" {
		return s.heroOverride
	}
	if link, ok := s.assets.ResolveVideo(HeroVideoBase); ok {
		return link
	}
	return ""
}

type staticRemoteMedia struct {
	baseURL string
	files   []string
}

// NewStaticRemoteMedia serves a fixed file list below baseURL.
func NewStaticRemoteMedia(baseURL string, files []string) RemoteMedia {
	return &staticRemoteMedia{baseURL: strings.TrimRight(baseURL, "/"), files: files}
}

func (r *staticRemoteMedia) List(_ context.Context) ([]models.MediaItem, error) {
	items := make([]models.MediaItem, 0, len(r.files))
	for _, f := range r.files {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		items = append(items, remoteItem(f, joinURL(r.baseURL, f)))
	}
	return items, nil
}

type bucketRemoteMedia struct {
	minio   MinioService
	bucket  string
	prefix  string
	baseURL string
}

// NewBucketRemoteMedia lists video objects in a bucket. With a baseURL the
// objects are linked publicly; without one a presigned URL is issued.
func NewBucketRemoteMedia(minio MinioService, bucket, prefix, baseURL string) RemoteMedia {
	return &bucketRemoteMedia{minio: minio, bucket: bucket, prefix: prefix, baseURL: strings.TrimRight(baseURL, "/")}
}

func (r *bucketRemoteMedia) List(ctx context.Context) ([]models.MediaItem, error) {
	keys, err := r.minio.ListObjects(ctx, r.bucket, r.prefix)
	if err != nil {
		return nil, err
	}

	items := make([]models.MediaItem, 0, len(keys))
	for _, key := range keys {
		if !remoteVideoExtensions[strings.ToLower(path.Ext(key))] {
			continue
		}
		link := joinURL(r.baseURL, key)
		if r.baseURL == "" {
			link, err = r.minio.GetPresignedURL(ctx, r.bucket, key, presignExpiry)
			if err != nil {
				zap.L().Warn("presign failed", zap.String("key", key), zap.Error(err))
				continue
			}
		}
		items = append(items, remoteItem(key, link))
	}
	return items, nil
}

func remoteItem(name, link string) models.MediaItem {
	base := path.Base(name)
	return models.MediaItem{
		Title:  strings.TrimSuffix(base, filepath.Ext(base)),
		URL:    link,
		Source: models.MediaSourceRemote,
	}
}

func joinURL(base, name string) string {
	parts := strings.Split(name, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return base + "/" + strings.Join(parts, "/")
}
