package slot

import (
	"context"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/vessel"
)

// emitBadCast emits an event when a typed extraction is rejected.
func emitBadCast(ctx context.Context, want, have vessel.Token, err error) {
	capitan.Error(ctx, vessel.SignalBadCast,
		vessel.KeyWantType.Field(want.String()),
		vessel.KeyHaveType.Field(have.String()),
		vessel.KeyError.Field(err),
	)
}
