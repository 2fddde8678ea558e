package services

import (
	"os"
	"path"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const qrSize = 512

// QRTarget is one QR image to keep in sync with a configured URL.
type QRTarget struct {
	File string // file name inside img/qr
	URL  string
}

// QRService regenerates the social-link QR images. The images are cosmetic:
// failures are logged and skipped.
type QRService interface {
	Generate() int
	URL(file string) string
}

type qrService struct {
	assets  AssetService
	targets []QRTarget
}

func NewQRService(assets AssetService, targets []QRTarget) QRService {
	return &qrService{assets: assets, targets: targets}
}

// Generate overwrites every target image and returns how many were written.
func (s *qrService) Generate() int {
	dir := s.assets.Path(QRDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		zap.L().Debug("qr directory unavailable", zap.String("dir", dir), zap.Error(err))
		return 0
	}

	written := 0
	for _, t := range s.targets {
		if t.URL == "" {
			continue
		}
		out := s.assets.Path(path.Join(QRDir, t.File))
		if err := qrcode.WriteFile(t.URL, qrcode.Medium, qrSize, out); err != nil {
			zap.L().Debug("qr generation failed", zap.String("file", out), zap.Error(err))
			continue
		}
		written++
	}
	return written
}

func (s *qrService) URL(file string) string {
	return s.assets.URL(path.Join(QRDir, file))
}
