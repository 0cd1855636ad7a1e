package mcp

import (
	"context"

	"github.com/civicsignal/repalign/internal/config"
	"github.com/civicsignal/repalign/internal/domain/alignment"
	"github.com/civicsignal/repalign/internal/domain/bills"
	"github.com/civicsignal/repalign/internal/domain/legislator"
	congressProvider "github.com/civicsignal/repalign/internal/domain/legislator/providers/congress"
	openstatesProvider "github.com/civicsignal/repalign/internal/domain/legislator/providers/openstates"
	"github.com/civicsignal/repalign/internal/issue"
	"github.com/civicsignal/repalign/internal/mcp/tools"
	"github.com/civicsignal/repalign/internal/session"
	"github.com/civicsignal/repalign/pkg/congress"
	"github.com/civicsignal/repalign/pkg/geocode"
	"github.com/civicsignal/repalign/pkg/logging"
	"github.com/civicsignal/repalign/pkg/openstates"
	sheetsclient "github.com/civicsignal/repalign/pkg/sheets"
)

// Resources bundles everything the tool surface needs
type Resources struct {
	Engine *session.Session
	Sheets tools.SheetsClient
}

// provideGeocodeClient builds the Census geocoder client
func provideGeocodeClient(cfg config.Config) *geocode.Client {
	return geocode.NewClient(geocode.Config{BaseURL: cfg.Geocoder.BaseURL})
}

// provideOpenStatesClient builds the OpenStates API client
func provideOpenStatesClient(cfg config.Config) (*openstates.Client, error) {
	return openstates.NewClient(openstates.Config{APIKey: cfg.OpenStates.APIKey})
}

// provideCongressClient builds the Congress.gov API client
func provideCongressClient(cfg config.Config) (*congress.Client, error) {
	return congress.NewClient(congress.Config{APIKey: cfg.Congress.APIKey})
}

// provideBillSource routes federal queries to Congress.gov and everything else
// to OpenStates
func provideBillSource(fed *congressProvider.BillSource, state *openstatesProvider.BillSource) (bills.Source, error) {
	return bills.Route(fed, state)
}

// provideBillCache builds the session bill cache
func provideBillCache(source bills.Source, cfg config.Config, logger *logging.Logger) (*bills.Cache, error) {
	return bills.NewCache(source, logger,
		bills.WithQueryDelay(cfg.Bills.QueryDelay),
		bills.WithQueryLimit(cfg.Bills.QueryLimit),
	)
}

// provideCatalog loads the issue catalog
func provideCatalog(cfg config.Config) (*issue.Catalog, error) {
	return issue.Load(cfg.Catalog.IssuesPath)
}

// provideScorer loads the operator override tables into a scorer
func provideScorer(cfg config.Config) (*alignment.Scorer, error) {
	overrides, err := alignment.LoadOverrides(cfg.Catalog.OverridesPath)
	if err != nil {
		return nil, err
	}
	return alignment.NewScorer(overrides), nil
}

// provideSession assembles the engine surface
func provideSession(legs *legislator.Service, cache *bills.Cache, catalog *issue.Catalog, scorer *alignment.Scorer, logger *logging.Logger) (*session.Session, error) {
	return session.New(legs, cache, catalog, scorer, logger)
}

// provideSheetsClient builds the Sheets exporter, or a nil-backed adapter when
// credentials are not configured; the export tool reports that at call time.
func provideSheetsClient(ctx context.Context, cfg config.Config, logger *logging.Logger) tools.SheetsClient {
	if cfg.Sheets.CredentialsPath == "" {
		logger.Warn("Google Sheets export disabled, no credentials configured")
		return &sheetsClientAdapter{}
	}

	client, err := sheetsclient.NewClient(ctx, sheetsclient.Config{
		CredentialsPath: cfg.Sheets.CredentialsPath,
	})
	if err != nil {
		logger.Warn("failed to initialize Google Sheets client", "err", err)
		return &sheetsClientAdapter{}
	}

	return &sheetsClientAdapter{client: client}
}

// newResources creates the Resources struct
func newResources(engine *session.Session, sheets tools.SheetsClient) *Resources {
	return &Resources{
		Engine: engine,
		Sheets: sheets,
	}
}
