package vessel

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for container events.
var (
	SignalTypeRegistered = capitan.NewSignal("vessel.type.registered", "Type token allocated")
	SignalTableBuilt     = capitan.NewSignal("vessel.table.built", "Function table built for type")
	SignalBadCast        = capitan.NewSignal("vessel.cast.failed", "Typed extraction rejected")
)

// Keys for typed event data.
var (
	KeyTypeName = capitan.NewStringKey("type_name")
	KeyTypeID   = capitan.NewIntKey("type_id")
	KeyWantType = capitan.NewStringKey("want_type")
	KeyHaveType = capitan.NewStringKey("have_type")
	KeyError    = capitan.NewErrorKey("error")

	KeyCopyMode    = capitan.NewStringKey("copy_mode")
	KeyReleaseMode = capitan.NewStringKey("release_mode")
)

// emitTypeRegistered emits an event when a type receives its token.
func emitTypeRegistered(ctx context.Context, typeName string, id int) {
	capitan.Emit(ctx, SignalTypeRegistered,
		KeyTypeName.Field(typeName),
		KeyTypeID.Field(id),
	)
}
