package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Platform is an operating system family that ships its own SDK.
type Platform uint8

const (
	// PlatformMacOSX is the desktop platform.
	PlatformMacOSX Platform = iota
	// PlatformIPhoneOS is the mobile device platform.
	PlatformIPhoneOS
	// PlatformIPhoneSimulator is the mobile simulator platform.
	PlatformIPhoneSimulator
	// PlatformAppleTVOS is the TV device platform.
	PlatformAppleTVOS
	// PlatformAppleTVSimulator is the TV simulator platform.
	PlatformAppleTVSimulator
	// PlatformWatchOS is the watch device platform.
	PlatformWatchOS
	// PlatformWatchSimulator is the watch simulator platform.
	PlatformWatchSimulator
	// PlatformDriverKit is the driver extension platform.
	PlatformDriverKit
)

type platformInfo struct {
	dirName string
	sdkName string
}

var platformTable = [...]platformInfo{
	PlatformMacOSX:           {dirName: "MacOSX", sdkName: "macosx"},
	PlatformIPhoneOS:         {dirName: "iPhoneOS", sdkName: "iphoneos"},
	PlatformIPhoneSimulator:  {dirName: "iPhoneSimulator", sdkName: "iphonesimulator"},
	PlatformAppleTVOS:        {dirName: "AppleTVOS", sdkName: "appletvos"},
	PlatformAppleTVSimulator: {dirName: "AppleTVSimulator", sdkName: "appletvsimulator"},
	PlatformWatchOS:          {dirName: "WatchOS", sdkName: "watchos"},
	PlatformWatchSimulator:   {dirName: "WatchSimulator", sdkName: "watchsimulator"},
	PlatformDriverKit:        {dirName: "DriverKit", sdkName: "driverkit"},
}

// Platforms returns every known platform in canonical order.
func Platforms() []Platform {
	out := make([]Platform, len(platformTable))
	for i := range platformTable {
		out[i] = Platform(i)
	}
	return out
}

// DirName returns the name used for the platform's directory, e.g. "MacOSX".
func (p Platform) DirName() string {
	return platformTable[p].dirName
}

// SdkName returns the lower-case name an SDK declares for the platform, e.g. "macosx".
func (p Platform) SdkName() string {
	return platformTable[p].sdkName
}

// String implements fmt.Stringer.
func (p Platform) String() string {
	if int(p) >= len(platformTable) {
		return "Platform(" + strconv.Itoa(int(p)) + ")"
	}
	return p.DirName()
}

// ParsePlatform resolves a platform from its directory or SDK name, ignoring case.
func ParsePlatform(name string) (Platform, error) {
	for i, info := range platformTable {
		if strings.EqualFold(name, info.dirName) || strings.EqualFold(name, info.sdkName) {
			return Platform(i), nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrUnknownPlatform, "cannot resolve platform"), "platform", name)
}

// PlatformFromSdkDirName derives the platform from an SDK directory name such as "MacOSX14.0.sdk".
// The longest matching prefix wins so that "iPhoneSimulator" is not taken for "iPhoneOS".
func PlatformFromSdkDirName(name string) (Platform, bool) {
	best, bestLen := Platform(0), 0
	for i, info := range platformTable {
		if len(info.dirName) > bestLen && strings.HasPrefix(strings.ToLower(name), strings.ToLower(info.dirName)) {
			best, bestLen = Platform(i), len(info.dirName)
		}
	}
	return best, bestLen > 0
}

// SdkPath is the root of the single SDK selected for a platform.
type SdkPath struct {
	Platform Platform
	Path     string
}

// TargetTriple identifies one parse configuration, e.g. "x86_64-apple-macosx10.7.0".
type TargetTriple string

// ParseRequest is everything the parser needs for one independent parse.
type ParseRequest struct {
	EntryHeader string
	Target      TargetTriple
	SdkRoot     string
}
