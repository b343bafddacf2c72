package sessionstore

import (
	"context"

	"github.com/mayan-tools/mayan-comdirect-importer/pkg/comdirect"
)

// Store persists the serialized banking session between invocations.
// Load returns nil without error when no cached state exists.
type Store interface {
	Load(ctx context.Context) (*comdirect.State, error)
	Save(ctx context.Context, state comdirect.State) error
}
