package services

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"xestetik/internal/common"

	"go.uber.org/zap"
)

// Subdirectories of the static root that make up the asset contract.
const (
	PhotosDir  = "photos"
	VideoDir   = "video"
	CatalogDir = "img/catalog"
	EffectsDir = "img/effects"
	ThumbsDir  = "img/thumbs"
	QRDir      = "img/qr"
	PDFDir     = "pdf"
)

// All photo extensions share one priority, so the first match by name wins.
var photoExtensions = map[string]int{".jpg": 0, ".jpeg": 0, ".png": 0, ".webp": 0, ".jfif": 0}

// Lower is preferred when the same clip exists in several containers.
var videoExtensions = map[string]int{".mp4": 0, ".mov": 1, ".m4v": 2, ".webm": 3}

var galleryExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

// VideoFile is a playable clip found in the video directory.
type VideoFile struct {
	Stem string
	URL  string
}

// AssetService maps product base names and slugs to files under the static
// root. Every lookup fails soft: a missing or unreadable directory is "no
// asset", never an error.
type AssetService interface {
	ResolvePhoto(base string) (string, bool)
	ResolveVideo(base string) (string, bool)
	ListVideos() []VideoFile
	ListGallery(slug string) []string
	ListEffects(folder string) []string
	ThumbFallback(slug string) string
	URL(rel string) string
	Path(rel string) string
}

type assetService struct {
	root      string
	urlPrefix string
}

// NewAssetService serves files below root under the urlPrefix URL path
// (for example "static" and "/static").
func NewAssetService(root, urlPrefix string) AssetService {
	return &assetService{
		root:      root,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
	}
}

func (s *assetService) ResolvePhoto(base string) (string, bool) {
	name, ok := s.bestMatch(PhotosDir, base, photoExtensions)
	if !ok {
		return "", false
	}
	return s.URL(path.Join(PhotosDir, name)), true
}

func (s *assetService) ResolveVideo(base string) (string, bool) {
	name, ok := s.bestMatch(VideoDir, base, videoExtensions)
	if !ok {
		return "", false
	}
	return s.URL(path.Join(VideoDir, name)), true
}

// bestMatch scans dir for files whose normalised stem equals base. Among
// matches the lowest extension priority wins; equal priorities keep the
// first file by name.
func (s *assetService) bestMatch(dir, base string, priorities map[string]int) (string, bool) {
	wanted := common.NormalizeName(base)
	if wanted == "" {
		return "", false
	}

	best, bestPrio := "", -1
	for _, name := range s.regularFiles(dir) {
		ext := strings.ToLower(filepath.Ext(name))
		prio, ok := priorities[ext]
		if !ok {
			continue
		}
		if common.NormalizeName(strings.TrimSuffix(name, filepath.Ext(name))) != wanted {
			continue
		}
		if bestPrio == -1 || prio < bestPrio {
			best, bestPrio = name, prio
		}
	}
	return best, bestPrio != -1
}

// ListVideos returns one entry per normalised stem in the video directory,
// picking the preferred container, ordered by file name.
func (s *assetService) ListVideos() []VideoFile {
	type pick struct {
		name string
		prio int
	}
	picked := make(map[string]pick)
	var order []string

	for _, name := range s.regularFiles(VideoDir) {
		ext := strings.ToLower(filepath.Ext(name))
		prio, ok := videoExtensions[ext]
		if !ok {
			continue
		}
		key := common.NormalizeName(strings.TrimSuffix(name, filepath.Ext(name)))
		cur, seen := picked[key]
		if !seen {
			order = append(order, key)
		}
		if !seen || prio < cur.prio {
			picked[key] = pick{name: name, prio: prio}
		}
	}

	videos := make([]VideoFile, 0, len(order))
	for _, key := range order {
		name := picked[key].name
		videos = append(videos, VideoFile{
			Stem: strings.TrimSuffix(name, filepath.Ext(name)),
			URL:  s.URL(path.Join(VideoDir, name)),
		})
	}
	return videos
}

func (s *assetService) ListGallery(slug string) []string {
	return s.listImages(CatalogDir, slug)
}

func (s *assetService) ListEffects(folder string) []string {
	return s.listImages(EffectsDir, folder)
}

// listImages returns the images of dir/id sorted by file name. The id is
// checked before it touches the filesystem.
func (s *assetService) listImages(dir, id string) []string {
	images := []string{}
	if !common.IsSafeIdentifier(id) {
		if id != "" {
			zap.L().Warn("rejected unsafe asset identifier", zap.String("dir", dir), zap.String("id", id))
		}
		return images
	}

	rel := path.Join(dir, id)
	for _, name := range s.regularFiles(rel) {
		if galleryExtensions[strings.ToLower(filepath.Ext(name))] {
			images = append(images, s.URL(path.Join(rel, name)))
		}
	}
	return images
}

func (s *assetService) ThumbFallback(slug string) string {
	return s.URL(path.Join(ThumbsDir, slug+".jpg"))
}

// URL turns a slash separated path relative to the static root into its
// public URL, escaping each segment.
func (s *assetService) URL(rel string) string {
	parts := strings.Split(rel, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return s.urlPrefix + "/" + strings.Join(parts, "/")
}

// Path returns the filesystem path of a slash separated path relative to
// the static root.
func (s *assetService) Path(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

// regularFiles lists the regular files (symlinks followed) directly inside
// rel, sorted by name. Missing or unreadable directories yield nil.
func (s *assetService) regularFiles(rel string) []string {
	dir := s.Path(rel)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			zap.L().Debug("asset directory unreadable", zap.String("dir", dir), zap.Error(err))
		}
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
			continue
		}
		if entry.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(dir, entry.Name())); err == nil && info.Mode().IsRegular() {
				names = append(names, entry.Name())
			}
		}
	}
	return names
}
