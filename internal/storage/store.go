package storage

import (
	"context"

	"github.com/fitfocus/fitfocus/internal/model"
)

// StateKey is the single fixed key the whole application state lives under.
const StateKey = "fitfocus_state"

// Store persists the application state as one logical blob. Load never
// surfaces corruption to the caller: an absent or unparseable blob yields
// the default state. Save replaces the stored blob unconditionally.
type Store interface {
	Load(ctx context.Context) (model.AppState, error)
	Save(ctx context.Context, state model.AppState) error
}
