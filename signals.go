package kneeboard

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for conversion events.
var (
	SignalRegistryCreated = capitan.NewSignal("kneeboard.registry.created", "Registry instantiated")
	SignalDecodeStart     = capitan.NewSignal("kneeboard.decode.start", "Decode operation beginning")
	SignalDecodeComplete  = capitan.NewSignal("kneeboard.decode.complete", "Decode operation finished")
	SignalEncodeStart     = capitan.NewSignal("kneeboard.encode.start", "Encode operation beginning")
	SignalEncodeComplete  = capitan.NewSignal("kneeboard.encode.complete", "Encode operation finished")
)

// Keys for typed event data.
var (
	KeyFormat      = capitan.NewStringKey("format")
	KeyContentType = capitan.NewStringKey("content_type")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
	KeyFormatCount = capitan.NewIntKey("format_count")
	KeyGroupCount  = capitan.NewIntKey("group_count")
	KeyItemCount   = capitan.NewIntKey("item_count")
)

// emitRegistryCreated emits an event when a registry is created.
func emitRegistryCreated(ctx context.Context, formats int) {
	capitan.Emit(ctx, SignalRegistryCreated,
		KeyFormatCount.Field(formats),
	)
}

// emitDecodeStart emits an event when a decode begins.
func emitDecodeStart(ctx context.Context, format, contentType string, size int) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyFormat.Field(format),
		KeyContentType.Field(contentType),
		KeySize.Field(size),
	)
}

// emitDecodeComplete emits an event when a decode finishes.
func emitDecodeComplete(ctx context.Context, format, contentType string, size int, duration time.Duration, groups, items int, err error) {
	fields := []capitan.Field{
		KeyFormat.Field(format),
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyGroupCount.Field(groups),
		KeyItemCount.Field(items),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitEncodeStart emits an event when an encode begins.
func emitEncodeStart(ctx context.Context, format, contentType string, groups, items int) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyFormat.Field(format),
		KeyContentType.Field(contentType),
		KeyGroupCount.Field(groups),
		KeyItemCount.Field(items),
	)
}

// emitEncodeComplete emits an event when an encode finishes.
func emitEncodeComplete(ctx context.Context, format, contentType string, size int, duration time.Duration, groups, items int, err error) {
	fields := []capitan.Field{
		KeyFormat.Field(format),
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyGroupCount.Field(groups),
		KeyItemCount.Field(items),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}
