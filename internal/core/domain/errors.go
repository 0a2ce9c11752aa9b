package domain

import "go.trai.ch/zerr"

var (
	// ErrDeveloperDirInvalid is returned when the development-tools root is missing or not a directory.
	ErrDeveloperDirInvalid = zerr.New("developer directory is missing or not a directory")

	// ErrNoPlatforms is returned when the developer directory contains no known platform.
	ErrNoPlatforms = zerr.New("no platforms found in developer directory")

	// ErrSdkCardinality is returned when a platform does not have exactly one usable SDK.
	ErrSdkCardinality = zerr.New("expected exactly one sdk for platform")

	// ErrSdkSettingsInvalid is returned when an SDKSettings.json file cannot be read or parsed.
	ErrSdkSettingsInvalid = zerr.New("failed to read sdk settings")

	// ErrUnknownPlatform is returned when a platform name is not recognized.
	ErrUnknownPlatform = zerr.New("unknown platform")

	// ErrInvalidTargetSpec is returned when a target override is not of the form platform=triple.
	ErrInvalidTargetSpec = zerr.New("invalid target specification, expected format: platform=triple")

	// ErrSrcDirInvalid is returned when the source directory holding framework configs cannot be read.
	ErrSrcDirInvalid = zerr.New("failed to read source directory")

	// ErrConfigReadFailed is returned when a translation config cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read translation config")

	// ErrConfigParseFailed is returned when a translation config cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse translation config")

	// ErrParseFailed is returned when the AST parser does not produce a translation unit.
	ErrParseFailed = zerr.New("failed to parse translation unit")

	// ErrFrameworkLayout is returned when a header path below the frameworks root has an unexpected shape.
	ErrFrameworkLayout = zerr.New("unexpected framework header layout")

	// ErrInvalidInclusion is returned when a framework inclusion directive is not of the form Framework/Header.h.
	ErrInvalidInclusion = zerr.New("invalid framework inclusion")

	// ErrFileNotRegistered is returned when a declaration belongs to a header that no umbrella header included.
	ErrFileNotRegistered = zerr.New("declaration in header that was never included")

	// ErrLibrarySetMismatch is returned when two results do not track the same frameworks.
	ErrLibrarySetMismatch = zerr.New("framework sets differ between results")

	// ErrStructuralMismatch is returned when two target triples produce different models for a framework.
	ErrStructuralMismatch = zerr.New("framework differs between target triples")

	// ErrNoCanonicalResult is returned when the canonical platform produced no result.
	ErrNoCanonicalResult = zerr.New("canonical platform produced no result")

	// ErrOutputWriteFailed is returned when generated sources cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write generated sources")

	// ErrFormatFailed is returned when the formatting pass fails.
	ErrFormatFailed = zerr.New("failed to format generated sources")
)
