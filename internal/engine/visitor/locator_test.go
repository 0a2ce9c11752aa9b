package visitor_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hdrgen/internal/core/domain"
	"go.trai.ch/hdrgen/internal/engine/visitor"
)

const testRoot = "/sdk/System/Library/Frameworks"

func TestIdentify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		want   domain.FileIdentity
		wantOK bool
	}{
		{
			name:   "header in Headers directory",
			path:   filepath.Join(testRoot, "Foo.framework", "Headers", "Bar.h"),
			want:   domain.FileIdentity{Library: "Foo", File: "Bar"},
			wantOK: true,
		},
		{
			name:   "nested framework path keeps last component",
			path:   filepath.Join(testRoot, "Foo.framework", "Versions", "A", "Headers", "Baz.h"),
			want:   domain.FileIdentity{Library: "Foo", File: "Baz"},
			wantOK: true,
		},
		{
			name:   "header without extension",
			path:   filepath.Join(testRoot, "Foo.framework", "Headers", "Qux"),
			want:   domain.FileIdentity{Library: "Foo", File: "Qux"},
			wantOK: true,
		},
		{
			name: "system header outside root",
			path: "/sdk/usr/include/stdio.h",
		},
		{
			name: "sibling directory sharing a prefix",
			path: "/sdk/System/Library/FrameworksExtra/Foo.framework/Headers/Bar.h",
		},
		{
			name: "root itself",
			path: testRoot,
		},
		{
			name: "no location",
			path: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok, err := visitor.Identify(tt.path, testRoot)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentify_LayoutViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
	}{
		{name: "missing framework suffix", path: filepath.Join(testRoot, "Foo", "Headers", "Bar.h")},
		{name: "no header component", path: filepath.Join(testRoot, "Foo.framework")},
		{name: "empty framework name", path: filepath.Join(testRoot, ".framework", "Bar.h")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, ok, err := visitor.Identify(tt.path, testRoot)
			require.Error(t, err)
			assert.False(t, ok)
			assert.ErrorIs(t, err, domain.ErrFrameworkLayout)
		})
	}
}
