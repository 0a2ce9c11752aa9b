package telemetry_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/hdrgen/internal/adapters/telemetry"
	"go.trai.ch/hdrgen/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_OnStart(t *testing.T) {
	ctrl := gomock.NewController(t)

	renderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(renderer)

	renderer.EXPECT().OnTaskStart(gomock.Any(), "", "parsing", gomock.Any()).Times(1)

	tp := sdktrace.NewTracerProvider()
	_, span := tp.Tracer("test").Start(context.Background(), "parsing")
	defer span.End()

	if rw, ok := span.(sdktrace.ReadWriteSpan); ok {
		bridge.OnStart(context.Background(), rw)
	}
}

func TestBridge_OnStartReportsParent(t *testing.T) {
	ctrl := gomock.NewController(t)

	renderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(renderer)

	tp := sdktrace.NewTracerProvider()
	ctx, parent := tp.Tracer("test").Start(context.Background(), "translating")
	defer parent.End()
	_, child := tp.Tracer("test").Start(ctx, "parsing")
	defer child.End()

	renderer.EXPECT().OnTaskStart(gomock.Any(), parent.SpanContext().SpanID().String(), "parsing", gomock.Any()).Times(1)

	if rw, ok := child.(sdktrace.ReadWriteSpan); ok {
		bridge.OnStart(ctx, rw)
	}
}

func TestBridge_NilRenderer(_ *testing.T) {
	bridge := telemetry.NewBridge(nil)

	tp := sdktrace.NewTracerProvider()
	ctx, span := tp.Tracer("test").Start(context.Background(), "parsing")
	span.End()

	if rw, ok := span.(sdktrace.ReadWriteSpan); ok {
		bridge.OnStart(ctx, rw)
		bridge.OnEnd(rw)
	}
}

func TestBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)

	renderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(renderer)

	renderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), nil).Times(1)

	tp := sdktrace.NewTracerProvider()
	_, span := tp.Tracer("test").Start(context.Background(), "parsing")
	span.End()

	if ro, ok := span.(sdktrace.ReadOnlySpan); ok {
		bridge.OnEnd(ro)
	}
}

func TestBridge_OnEndWithError(t *testing.T) {
	ctrl := gomock.NewController(t)

	renderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(renderer)

	renderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).Times(1)

	tp := sdktrace.NewTracerProvider()
	_, span := tp.Tracer("test").Start(context.Background(), "parsing")
	span.SetStatus(codes.Error, "structural mismatch")
	span.End()

	if ro, ok := span.(sdktrace.ReadOnlySpan); ok {
		bridge.OnEnd(ro)
	}
}

func TestBridge_FlushAndShutdown(t *testing.T) {
	bridge := telemetry.NewBridge(nil)

	if err := bridge.ForceFlush(context.Background()); err != nil {
		t.Errorf("ForceFlush() error = %v", err)
	}
	if err := bridge.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
