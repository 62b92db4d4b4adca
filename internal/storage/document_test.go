package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visahub/visahub/internal/config"
	"github.com/visahub/visahub/internal/logger"
)

func TestNewDocumentStoreDisabled(t *testing.T) {
	store, err := NewDocumentStore(&config.Configuration{}, logger.NewNopLogger())
	require.NoError(t, err)

	ref, err := store.Upload(context.Background(), "app_1", "passport.pdf", "application/pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "local://app_1/passport.pdf", ref)
}

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"passport.pdf":            "passport.pdf",
		"../../etc/passwd":        "passwd",
		"dir/sub/file.png":        "file.png",
		"C:\\Users\\me\\scan.jpg": "scan.jpg",
		"":                        "document",
		".":                       "document",
	}

	for in, want := range cases {
		assert.Equal(t, want, sanitizeFileName(in), "input: %q", in)
	}
}
