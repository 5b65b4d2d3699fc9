package controllers

import (
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/backoffice/pkg/ctx"
	"github.com/shashiranjanraj/backoffice/pkg/storage"
)

// MaxUploadBytes caps a single image upload.
const MaxUploadBytes = 5 << 20

// uploadMemory is how much of a file is buffered in memory before the
// rest spills to a temp file.
const uploadMemory = 1 << 20

var imageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type UploadController struct {
	disk   storage.Disk
	memory int64
}

func NewUploadController(disk storage.Disk) *UploadController {
	return &UploadController{disk: disk, memory: uploadMemory}
}

// Store POST /upload takes a multipart "file" field holding an image and
// returns its stored path and public URL, ready for a product's imageUrls.
func (uc *UploadController) Store(c *ctx.Context) {
	c.R.Body = http.MaxBytesReader(c.W, c.R.Body, MaxUploadBytes)
	if err := c.R.ParseMultipartForm(uc.memory); err != nil {
		c.Error(http.StatusBadRequest, "A multipart file upload is required")
		return
	}
	defer c.R.MultipartForm.RemoveAll() //nolint:errcheck
	file, header, err := c.R.FormFile("file")
	if err != nil {
		c.Error(http.StatusBadRequest, "The file field is required")
		return
	}
	defer file.Close()

	sniff := make([]byte, 512)
	n, _ := file.Read(sniff)
	contentType := http.DetectContentType(sniff[:n])
	ext, ok := imageTypes[contentType]
	if !ok {
		c.Error(http.StatusUnprocessableEntity, "Only png, jpeg, gif and webp images are accepted")
		return
	}
	if _, err := file.Seek(0, 0); err != nil {
		c.Fail(err)
		return
	}

	now := time.Now().UTC()
	p := path.Join("products", now.Format("2006/01"), uuid.NewString()+ext)
	if err := uc.disk.Put(c.Context(), p, file, contentType); err != nil {
		c.Fail(fmt.Errorf("upload %s: %w", strings.TrimSpace(header.Filename), err))
		return
	}

	c.Created("File uploaded successfully", map[string]string{
		"path": p,
		"url":  uc.disk.URL(p),
	})
}
