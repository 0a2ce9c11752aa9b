package domain

import "path/filepath"

const (
	// PlatformsDirName is the directory of the developer root holding *.platform directories.
	PlatformsDirName = "Platforms"

	// PlatformDirSuffix is the suffix of a platform directory.
	PlatformDirSuffix = ".platform"

	// SdkDirSuffix is the suffix of an SDK root directory.
	SdkDirSuffix = ".sdk"

	// SdkSettingsFileName is the name of the settings file at the root of every SDK.
	SdkSettingsFileName = "SDKSettings.json"

	// FrameworkDirSuffix is the suffix identifying a framework container.
	FrameworkDirSuffix = ".framework"

	// HeaderSuffix is the suffix required on included framework headers.
	HeaderSuffix = ".h"

	// ConfigFileName is the name of the per-framework translation config.
	ConfigFileName = "translation-config.yaml"

	// GeneratedDirName is the name of the output root below the source directory.
	GeneratedDirName = "generated"

	// DefaultEntryHeader is the umbrella header handed to the parser.
	DefaultEntryHeader = "framework-includes.h"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// SdksDir returns the directory holding the SDKs of a platform directory.
func SdksDir(platformDir string) string {
	return filepath.Join(platformDir, "Developer", "SDKs")
}

// FrameworksDir returns the frameworks root of an SDK.
func FrameworksDir(sdkRoot string) string {
	return filepath.Join(sdkRoot, "System", "Library", "Frameworks")
}

// GeneratedDir returns the output root below the given source directory.
func GeneratedDir(srcDir string) string {
	return filepath.Join(srcDir, GeneratedDirName)
}
