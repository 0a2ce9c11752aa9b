package ports

import "go.trai.ch/hdrgen/internal/core/domain"

// SdkLocator resolves a developer directory into one SDK per platform.
//
//go:generate mockgen -source=sdk_locator.go -destination=mocks/mock_sdk_locator.go -package=mocks
type SdkLocator interface {
	// Discover returns one SDK per platform found in developerDir, in platform order.
	// It fails if any platform does not have exactly one usable SDK.
	Discover(developerDir string) ([]domain.SdkPath, error)
}
