// api/storage/blob_store_test.go
package storage

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
)

func TestObjectName(t *testing.T) {
	at := time.UnixMilli(1717232400000)
	assert.Equal(t, "1717232400000-protocol v2.pdf", ObjectName(" protocol v2.pdf ", at))
	assert.Equal(t, "1717232400000-a_b.pdf", ObjectName("a/b.pdf", at))
	assert.Equal(t, "1717232400000-file", ObjectName("", at))
}

func TestObjectNameOf(t *testing.T) {
	s := &MinioStore{bucket: "etmf-documents", publicBaseURL: "http://localhost:9000"}
	objectName := ObjectName("site binder.pdf", time.UnixMilli(1717232400000))
	fileURL := s.publicBaseURL + "/" + s.bucket + "/" + url.PathEscape(objectName)

	got, err := s.objectNameOf(fileURL)
	require.NoError(t, err)
	assert.Equal(t, objectName, got)

	_, err = s.objectNameOf("http://elsewhere/other-bucket/file.pdf")
	assert.ErrorIs(t, err, etmf_errors.ErrValidation)
}
