//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/civicsignal/repalign/internal/config"
	"github.com/civicsignal/repalign/internal/domain/legislator"
	censusProvider "github.com/civicsignal/repalign/internal/domain/legislator/providers/census"
	congressProvider "github.com/civicsignal/repalign/internal/domain/legislator/providers/congress"
	openstatesProvider "github.com/civicsignal/repalign/internal/domain/legislator/providers/openstates"
	"github.com/civicsignal/repalign/pkg/logging"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		// Upstream API clients
		provideGeocodeClient,
		provideOpenStatesClient,
		provideCongressClient,

		// Providers (record normalizers)
		censusProvider.NewProvider,
		wire.Bind(new(legislator.Geocoder), new(*censusProvider.Provider)),
		openstatesProvider.NewProvider,
		wire.Bind(new(legislator.StateProvider), new(*openstatesProvider.Provider)),
		congressProvider.NewProvider,
		wire.Bind(new(legislator.CongressProvider), new(*congressProvider.Provider)),

		// Bill sources and cache
		openstatesProvider.NewBillSource,
		congressProvider.NewBillSource,
		provideBillSource,
		provideBillCache,

		// Catalog, overrides, services
		provideCatalog,
		provideScorer,
		legislator.NewService,
		provideSession,

		// Export
		provideSheetsClient,
		newResources,
	)

	return &Resources{}, nil
}
