package ports

import "time"

// Renderer presents pipeline progress.
// It decouples span collection from presentation.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnTaskStart is called when a stage begins.
	OnTaskStart(spanID, parentID, name string, startTime time.Time)

	// OnTaskComplete is called when a stage finishes; err is nil on success.
	OnTaskComplete(spanID string, endTime time.Time, err error)
}
