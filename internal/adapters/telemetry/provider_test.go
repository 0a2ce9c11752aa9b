package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hdrgen/internal/adapters/telemetry"
	"go.trai.ch/hdrgen/internal/core/ports"
	"go.trai.ch/hdrgen/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
}

func TestSetup_FeedsRenderer(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	gomock.InOrder(
		renderer.EXPECT().OnTaskStart(gomock.Any(), "", "discovering sdks", gomock.Any()),
		renderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())),
	)

	shutdown := telemetry.Setup(renderer)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	_, span := telemetry.NewOTelTracer("test").Start(context.Background(), "discovering sdks")
	span.SetAttribute("platforms", 2)
	span.SetAttribute("platform", "MacOSX")
	span.SetAttribute("canonical", true)
	span.SetAttribute("triples", []string{"x86_64-apple-macosx10.7.0"})
	span.SetAttribute("diagnostics", int64(3))
	span.SetAttribute("other", struct{}{})
	span.RecordError(errors.New("no platforms"))
	span.End()
}

func TestOTelSpan_RecordNilError(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	renderer.EXPECT().OnTaskStart(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	renderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), nil)

	shutdown := telemetry.Setup(renderer)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	_, span := telemetry.NewOTelTracer("test").Start(context.Background(), "formatting")
	span.RecordError(nil)
	span.End()
}

func TestNoOpTracer(t *testing.T) {
	ctx := context.Background()
	got, span := telemetry.NewNoOpTracer().Start(ctx, "parsing")
	require.NotNil(t, span)
	assert.Equal(t, ctx, got)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}
