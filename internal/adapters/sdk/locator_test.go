package sdk_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hdrgen/internal/adapters/sdk"
	"go.trai.ch/hdrgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// addSdk creates <dev>/Platforms/<platform>.platform/Developer/SDKs/<name>,
// with an SDKSettings.json declaring declared unless it is empty.
func addSdk(t *testing.T, dev, platform, name, declared string) string {
	t.Helper()

	root := filepath.Join(domain.SdksDir(filepath.Join(dev, domain.PlatformsDirName, platform+domain.PlatformDirSuffix)), name)
	require.NoError(t, os.MkdirAll(root, domain.DirPerm))

	if declared != "" {
		settings := `{"CanonicalName": "` + declared + `", "DefaultProperties": {"PLATFORM_NAME": "` + declared + `"}}`
		require.NoError(t, os.WriteFile(filepath.Join(root, domain.SdkSettingsFileName), []byte(settings), domain.FilePerm))
	}
	return root
}

func addAlias(t *testing.T, target, alias string) {
	t.Helper()
	require.NoError(t, os.Symlink(target, filepath.Join(filepath.Dir(target), alias)))
}

func TestDiscover_OnePerPlatform(t *testing.T) {
	dev := t.TempDir()
	mac := addSdk(t, dev, "MacOSX", "MacOSX.sdk", "macosx")
	addAlias(t, mac, "MacOSX14.0.sdk")
	ios := addSdk(t, dev, "iPhoneOS", "iPhoneOS.sdk", "")
	addAlias(t, ios, "iPhoneOS17.0.sdk")

	sdks, err := sdk.NewLocator().Discover(dev)
	require.NoError(t, err)
	assert.Equal(t, []domain.SdkPath{
		{Platform: domain.PlatformMacOSX, Path: mac},
		{Platform: domain.PlatformIPhoneOS, Path: ios},
	}, sdks)
}

func TestDiscover_DeclaredPlatformFiltersCandidates(t *testing.T) {
	dev := t.TempDir()
	mac := addSdk(t, dev, "MacOSX", "MacOSX.sdk", "macosx")
	addSdk(t, dev, "MacOSX", "DriverKit.sdk", "driverkit")

	sdks, err := sdk.NewLocator().Discover(dev)
	require.NoError(t, err)
	require.Len(t, sdks, 1)
	assert.Equal(t, mac, sdks[0].Path)
}

func TestDiscover_IgnoresUnknownPlatforms(t *testing.T) {
	dev := t.TempDir()
	addSdk(t, dev, "MacOSX", "MacOSX.sdk", "")
	addSdk(t, dev, "XROS", "XROS.sdk", "xros")

	sdks, err := sdk.NewLocator().Discover(dev)
	require.NoError(t, err)
	require.Len(t, sdks, 1)
	assert.Equal(t, domain.PlatformMacOSX, sdks[0].Platform)
}

func TestDiscover_Cardinality(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dev string)
		want  int
	}{
		{
			name: "two real sdks",
			setup: func(t *testing.T, dev string) {
				t.Helper()
				addSdk(t, dev, "MacOSX", "MacOSX13.sdk", "macosx")
				addSdk(t, dev, "MacOSX", "MacOSX14.sdk", "macosx")
			},
			want: 2,
		},
		{
			name: "only a symlink",
			setup: func(t *testing.T, dev string) {
				t.Helper()
				target := filepath.Join(t.TempDir(), "MacOSX.sdk")
				require.NoError(t, os.MkdirAll(target, domain.DirPerm))
				sdks := domain.SdksDir(filepath.Join(dev, domain.PlatformsDirName, "MacOSX.platform"))
				require.NoError(t, os.MkdirAll(sdks, domain.DirPerm))
				require.NoError(t, os.Symlink(target, filepath.Join(sdks, "MacOSX.sdk")))
			},
			want: 0,
		},
		{
			name: "empty platform",
			setup: func(t *testing.T, dev string) {
				t.Helper()
				require.NoError(t, os.MkdirAll(filepath.Join(dev, domain.PlatformsDirName, "MacOSX.platform"), domain.DirPerm))
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := t.TempDir()
			tt.setup(t, dev)

			_, err := sdk.NewLocator().Discover(dev)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrSdkCardinality)

			var z *zerr.Error
			require.ErrorAs(t, err, &z)
			assert.Equal(t, "MacOSX", z.Metadata()["platform"])
			assert.Equal(t, tt.want, z.Metadata()["candidates"])
		})
	}
}

func TestDiscover_InvalidInput(t *testing.T) {
	t.Run("missing developer dir", func(t *testing.T) {
		_, err := sdk.NewLocator().Discover(filepath.Join(t.TempDir(), "missing"))
		assert.ErrorIs(t, err, domain.ErrDeveloperDirInvalid)
	})

	t.Run("developer dir is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, domain.FilePerm))

		_, err := sdk.NewLocator().Discover(file)
		assert.ErrorIs(t, err, domain.ErrDeveloperDirInvalid)
	})

	t.Run("no platforms", func(t *testing.T) {
		_, err := sdk.NewLocator().Discover(t.TempDir())
		assert.ErrorIs(t, err, domain.ErrNoPlatforms)
	})

	t.Run("malformed settings", func(t *testing.T) {
		dev := t.TempDir()
		root := addSdk(t, dev, "MacOSX", "MacOSX.sdk", "")
		require.NoError(t, os.WriteFile(filepath.Join(root, domain.SdkSettingsFileName), []byte("{"), domain.FilePerm))

		_, err := sdk.NewLocator().Discover(dev)
		assert.ErrorIs(t, err, domain.ErrSdkSettingsInvalid)
	})
}
