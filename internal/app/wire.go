//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/tair/warehouse/internal/config"
	ordercommand "github.com/tair/warehouse/internal/order/usecase/command"
	"github.com/tair/warehouse/internal/store"
)

// InitializeApp wires every handler on top of s. guard and publisher may be nil.
func InitializeApp(
	cfg *config.Config,
	s store.Store,
	guard ordercommand.IdempotencyGuard,
	publisher ordercommand.PickPublisher,
) (*App, error) {
	wire.Build(
		RepositorySet,
		InventorySet,
		OrderSet,
		ProvideProtect,
		wire.Struct(new(App), "*"),
	)
	return nil, nil
}
