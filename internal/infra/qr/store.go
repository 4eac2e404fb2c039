package qr

import (
	"context"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"

	"bookfair-reservation/internal/pkg/config"
	"bookfair-reservation/internal/pkg/errs"
)

// FileStore writes PNG passes into a single directory on local disk.
type FileStore struct {
	dir  string
	size int
}

func NewFileStore(cfg config.QRConfig) (*FileStore, error) {
	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, errs.Wrap(err, "resolve QR code directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "create QR code directory")
	}
	return &FileStore{dir: dir, size: cfg.Size}, nil
}

// Write encodes payload and returns the absolute path of the image. An
// existing file with the same name is replaced.
func (s *FileStore) Write(ctx context.Context, filename, payload string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := s.Path(filename)
	if err := qrcode.WriteFile(payload, qrcode.Medium, s.size, path); err != nil {
		return "", errs.Wrap(err, "write QR code "+filename)
	}
	return path, nil
}

func (s *FileStore) Path(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filename))
}
