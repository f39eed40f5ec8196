package kneeboard

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitRegistryCreated(_ *testing.T) {
	// Should not panic
	emitRegistryCreated(context.Background(), 5)
}

func TestEmitDecodeStart(_ *testing.T) {
	emitDecodeStart(context.Background(), "binder", "application/x-checklist-binder+json", 1024)
}

func TestEmitDecodeComplete_Success(_ *testing.T) {
	emitDecodeComplete(context.Background(), "binder", "application/x-checklist-binder+json", 1024, 100*time.Millisecond, 3, 42, nil)
}

func TestEmitDecodeComplete_Error(_ *testing.T) {
	emitDecodeComplete(context.Background(), "binder", "application/x-checklist-binder+json", 1024, 100*time.Millisecond, 0, 0, errors.New("test error"))
}

func TestEmitEncodeStart(_ *testing.T) {
	emitEncodeStart(context.Background(), "compact", "application/x-checklist-compact", 3, 42)
}

func TestEmitEncodeComplete_Success(_ *testing.T) {
	emitEncodeComplete(context.Background(), "compact", "application/x-checklist-compact", 512, 100*time.Millisecond, 3, 42, nil)
}

func TestEmitEncodeComplete_Error(_ *testing.T) {
	emitEncodeComplete(context.Background(), "compact", "application/x-checklist-compact", 0, 100*time.Millisecond, 3, 42, errors.New("test error"))
}

func TestSignalVariables(t *testing.T) {
	// Verify signals are properly initialized
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalRegistryCreated", SignalRegistryCreated},
		{"SignalDecodeStart", SignalDecodeStart},
		{"SignalDecodeComplete", SignalDecodeComplete},
		{"SignalEncodeStart", SignalEncodeStart},
		{"SignalEncodeComplete", SignalEncodeComplete},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	// Verify keys are properly initialized
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyFormat", KeyFormat},
		{"KeyContentType", KeyContentType},
		{"KeySize", KeySize},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
		{"KeyFormatCount", KeyFormatCount},
		{"KeyGroupCount", KeyGroupCount},
		{"KeyItemCount", KeyItemCount},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
