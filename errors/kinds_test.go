// api/errors/kinds_test.go
package errors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"nil", nil, nil},
		{"entity error", etmf_errors.ErrTrialNotFound, etmf_errors.ErrNotFound},
		{"wrapped entity error", fmt.Errorf("loading: %w", etmf_errors.ErrZoneConflict), etmf_errors.ErrConflict},
		{"validation", etmf_errors.Validation("bad %s", "input"), etmf_errors.ErrValidation},
		{"out of order", etmf_errors.ErrStepOutOfOrder, etmf_errors.ErrOutOfOrder},
		{"storage", etmf_errors.ErrBlobStore, etmf_errors.ErrStorageUnavailable},
		{"deadline", context.DeadlineExceeded, etmf_errors.ErrTimeout},
		{"unknown", errors.New("boom"), etmf_errors.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, etmf_errors.KindOf(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := etmf_errors.Wrap(etmf_errors.ErrStorageUnavailable, cause, "saving document")

	assert.ErrorIs(t, err, etmf_errors.ErrStorageUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "saving document: connection refused", err.Error())

	timedOut := etmf_errors.Wrap(etmf_errors.ErrStorageUnavailable, fmt.Errorf("query: %w", context.DeadlineExceeded), "listing trials")
	assert.ErrorIs(t, timedOut, etmf_errors.ErrTimeout)
	assert.NotErrorIs(t, timedOut, etmf_errors.ErrStorageUnavailable)
	assert.Equal(t, etmf_errors.ErrTimeout, etmf_errors.KindOf(timedOut))
}

func TestKindName(t *testing.T) {
	assert.Equal(t, "NotFound", etmf_errors.KindName(etmf_errors.ErrNotFound))
	assert.Equal(t, "ValidationError", etmf_errors.KindName(etmf_errors.ErrValidation))
	assert.Equal(t, "ValidationError", etmf_errors.KindName(etmf_errors.ErrInvalidPagination))
	assert.Equal(t, "OutOfOrder", etmf_errors.KindName(etmf_errors.ErrOutOfOrder))
	assert.Equal(t, "StorageUnavailable", etmf_errors.KindName(etmf_errors.ErrStorageUnavailable))
	assert.Equal(t, "Internal", etmf_errors.KindName(errors.New("other")))
}
