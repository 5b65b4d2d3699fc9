package storage

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/backoffice/pkg/testkit"
)

func newTestS3(t *testing.T, mt *testkit.MockTransport) *S3 {
	t.Helper()
	d, err := NewS3(context.Background(), S3Options{
		Bucket:     "media",
		Region:     "us-east-1",
		Key:        "test",
		Secret:     "test",
		Endpoint:   "http://s3.test",
		BaseURL:    "https://cdn.test/media/",
		HTTPClient: mt.Client(),
	})
	require.NoError(t, err)
	return d
}

func TestS3PutSendsObject(t *testing.T) {
	mt := testkit.NewMockTransport().On(http.MethodPut, "http://s3.test/media/products/mug.png", http.StatusOK, "")
	d := newTestS3(t, mt)

	err := d.Put(context.Background(), "products/mug.png", bytes.NewReader([]byte("png")), "image/png")
	require.NoError(t, err)

	calls := mt.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPut, calls[0].Method)
	assert.Equal(t, "image/png", calls[0].Header.Get("Content-Type"))
}

func TestS3PutRejectsTraversal(t *testing.T) {
	mt := testkit.NewMockTransport()
	d := newTestS3(t, mt)

	err := d.Put(context.Background(), "../etc/passwd", bytes.NewReader(nil), "")
	assert.ErrorIs(t, err, ErrBadPath)
	assert.Empty(t, mt.Calls())
}

func TestS3URL(t *testing.T) {
	d := newTestS3(t, testkit.NewMockTransport())
	assert.Equal(t, "https://cdn.test/media/products/mug.png", d.URL("products/mug.png"))
	assert.Equal(t, "s3", d.Name())
}
