package logger_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hdrgen/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "standard error",
			err:          errors.New("simple"),
			wantMessages: []string{"simple"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root"), "middle"), "outer"),
			wantMessages: []string{"outer", "middle", "root"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name: "metadata per link",
			err: zerr.With(
				zerr.Wrap(zerr.With(zerr.New("inner"), "file", "NSString"), "outer"),
				"library", "Foundation",
			),
			wantMessages: []string{"outer", "inner"},
			wantMetadata: []map[string]any{{"library": "Foundation"}, {"file": "NSString"}},
		},
		{
			name:         "metadata on a standard error folds into the previous link",
			err:          zerr.Wrap(zerr.With(os.ErrNotExist, "path", "/x"), "cannot open"),
			wantMessages: []string{"cannot open", "file does not exist"},
			wantMetadata: []map[string]any{{"path": "/x"}, nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			require.Len(t, entries, len(tt.wantMessages))

			for i := range entries {
				assert.Equal(t, tt.wantMessages[i], entries[i].Message)
				assert.Equal(t, tt.wantMetadata[i], entries[i].Metadata)
			}
		})
	}
}

func TestCollectErrorEntries_Nil(t *testing.T) {
	assert.Empty(t, logger.CollectErrorEntries(nil))
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single",
			entries: []logger.ErrorEntry{{Message: "single"}},
			want:    "Error: single",
		},
		{
			name:    "causes",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "sorted metadata",
			entries: []logger.ErrorEntry{{
				Message:  "mismatch",
				Metadata: map[string]any{"statement": 2, "library": "Foundation"},
			}},
			want: "Error: mismatch\n       library: Foundation\n       statement: 2",
		},
		{
			name: "multiline cause with metadata",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "line1\nline2", Metadata: map[string]any{"k": "v"}},
			},
			want: "Error: main\n\n  Caused by:\n    → line1\n      line2\n      k: v",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
