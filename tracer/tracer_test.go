package tracer

import (
	"context"
	"testing"
)

func TestInit_Disabled(t *testing.T) {
	tp, err := Init(context.Background(), Config{Enabled: false, ServiceName: "clinic"})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "noop")
	defer span.End()

	if span.SpanContext().IsSampled() {
		t.Error("expected spans to be dropped when tracing is disabled")
	}
}
