package sdk

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/hdrgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// settings is the subset of SDKSettings.json the locator needs.
type settings struct {
	CanonicalName     string `json:"CanonicalName"`
	DefaultProperties struct {
		PlatformName string `json:"PLATFORM_NAME"`
	} `json:"DefaultProperties"`
}

// declaredPlatform returns the platform name an SDK declares for itself.
// An SDK without a settings file declares nothing.
func declaredPlatform(sdkRoot string) (string, error) {
	path := filepath.Join(sdkRoot, domain.SdkSettingsFileName)

	//nolint:gosec // path is below a directory found by listing the developer directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrSdkSettingsInvalid, err), "cannot inspect sdk"), "path", path)
	}

	var s settings
	if err := json.Unmarshal(data, &s); err != nil {
		return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrSdkSettingsInvalid, err), "cannot inspect sdk"), "path", path)
	}

	return s.DefaultProperties.PlatformName, nil
}
