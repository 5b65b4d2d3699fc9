// Package storage stores uploaded product images on the local filesystem
// or an S3-compatible bucket.
//
//	disk, err := storage.Open(ctx)
//	err = disk.Put(ctx, "products/2026/10/mug.png", file, "image/png")
//	url := disk.URL("products/2026/10/mug.png")
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/shashiranjanraj/backoffice/config"
)

// ErrBadPath is returned for empty or escaping object paths.
var ErrBadPath = errors.New("storage: invalid path")

// Disk is implemented by every driver.
type Disk interface {
	// Put writes r to p, replacing any existing object.
	Put(ctx context.Context, p string, r io.Reader, contentType string) error
	// Exists reports whether an object is stored at p.
	Exists(ctx context.Context, p string) (bool, error)
	// Delete removes p. Deleting a missing object is not an error.
	Delete(ctx context.Context, p string) error
	// URL is the public address of p.
	URL(p string) string
	Name() string
}

// Open builds the disk selected by STORAGE_DISK ("local" or "s3").
func Open(ctx context.Context) (Disk, error) {
	switch config.StorageDefault() {
	case "s3":
		return NewS3(ctx, S3Options{
			Bucket:   config.StorageS3Bucket(),
			Region:   config.StorageS3Region(),
			Key:      config.StorageS3Key(),
			Secret:   config.StorageS3Secret(),
			Endpoint: config.StorageS3Endpoint(),
			BaseURL:  config.StorageS3URL(),
		})
	case "local", "":
		return NewLocal(config.StorageLocalRoot(), config.StorageURL())
	default:
		return nil, fmt.Errorf("storage: unsupported STORAGE_DISK %q", config.StorageDefault())
	}
}

// Clean normalizes p to a relative slash path and rejects traversal.
func Clean(p string) (string, error) {
	p = strings.TrimSpace(strings.ReplaceAll(p, "\\", "/"))
	if p == "" {
		return "", ErrBadPath
	}
	cleaned := path.Clean("/" + p)[1:]
	if cleaned == "" || cleaned == "." {
		return "", ErrBadPath
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", ErrBadPath
		}
	}
	return cleaned, nil
}
