// Package session owns the per-browsing-session engine state: the working
// legislator slate, the bill cache, and the staleness guard. All mutation of
// shared state happens under one mutex; the only cross-request hazard is a
// newer lookup superseding a slower one, which the guard handles by discarding
// stale writes.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/civicsignal/repalign/internal/domain"
	"github.com/civicsignal/repalign/internal/domain/alignment"
	"github.com/civicsignal/repalign/internal/domain/bills"
	"github.com/civicsignal/repalign/internal/domain/legislator"
	"github.com/civicsignal/repalign/internal/issue"
	"github.com/civicsignal/repalign/pkg/logging"
)

// ErrStale marks a computation superseded by a newer request. Not a failure:
// the caller simply drops the result.
var ErrStale = errors.New("session: superseded by a newer request")

// ErrNoSlate indicates no address search has populated the session yet
var ErrNoSlate = errors.New("session: no active slate, run an address lookup first")

// ErrUnknownIssue indicates an issue id outside the catalog
var ErrUnknownIssue = errors.New("session: unknown issue")

// ErrUnknownLegislator indicates a legislator name not in the current slate
var ErrUnknownLegislator = errors.New("session: legislator not in current slate")

// Session is the engine surface consumed by the UI layer
type Session struct {
	legs    *legislator.Service
	cache   *bills.Cache
	catalog *issue.Catalog
	scorer  *alignment.Scorer
	logger  *logging.Logger

	syncFill bool

	guard alignment.Guard

	mu            sync.Mutex
	slate         []domain.Legislator
	jurisdiction  string
	topSupporters []domain.RankedSupporter
	topIssueID    string
}

// Option configures a Session
type Option func(*Session)

// WithSyncFill makes the jurisdiction-wide roster fill run synchronously
// inside LookupReps instead of in the background. Used by tests and the CLI
// client, where there is no UI to update incrementally.
func WithSyncFill() Option {
	return func(s *Session) {
		s.syncFill = true
	}
}

// New builds a session over the lookup service, bill cache, and issue catalog
func New(legs *legislator.Service, cache *bills.Cache, catalog *issue.Catalog, scorer *alignment.Scorer, logger *logging.Logger, opts ...Option) (*Session, error) {
	if legs == nil {
		return nil, fmt.Errorf("session: legislator service is required")
	}
	if cache == nil {
		return nil, fmt.Errorf("session: bill cache is required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("session: issue catalog is required")
	}
	if scorer == nil {
		return nil, fmt.Errorf("session: scorer is required")
	}

	s := &Session{
		legs:    legs,
		cache:   cache,
		catalog: catalog,
		scorer:  scorer,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SlateResult is the outcome of an address lookup
type SlateResult struct {
	Jurisdiction string
	Slate        []domain.Legislator
}

// LookupReps resolves an address to a working slate. The previous slate, the
// bill cache, and any in-flight ranking are reset atomically; the slow
// jurisdiction-wide roster fill then merges into the slate in the background
// (or inline under WithSyncFill). Returns the address-local wave.
func (s *Session) LookupReps(ctx context.Context, address string) (SlateResult, error) {
	local, err := s.legs.Local(ctx, address)
	if err != nil {
		return SlateResult{}, err
	}

	s.mu.Lock()
	s.slate = local.Slate
	s.jurisdiction = local.Jurisdiction
	s.topSupporters = nil
	s.topIssueID = ""
	s.cache.Reset()
	s.guard.Invalidate()
	snapshot := snapshotSlate(s.slate)
	s.mu.Unlock()

	s.logger.Info("slate populated",
		"jurisdiction", local.Jurisdiction, "officials", len(local.Slate))

	if s.syncFill {
		s.fillRoster(ctx, local.Jurisdiction)
		s.mu.Lock()
		snapshot = snapshotSlate(s.slate)
		s.mu.Unlock()
	} else {
		go s.fillRoster(context.WithoutCancel(ctx), local.Jurisdiction)
	}

	return SlateResult{Jurisdiction: local.Jurisdiction, Slate: snapshot}, nil
}

// fillRoster merges the jurisdiction-wide roster into the slate. If a newer
// address search changed the jurisdiction while the roster was in flight, the
// result is dropped.
func (s *Session) fillRoster(ctx context.Context, jurisdiction string) {
	roster, err := s.legs.Roster(ctx, jurisdiction)
	if err != nil {
		s.logger.Warn("roster fill failed", "jurisdiction", jurisdiction, "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.jurisdiction != jurisdiction {
		s.logger.Debug("roster fill discarded, jurisdiction changed",
			"fetched", jurisdiction, "current", s.jurisdiction)
		return
	}
	before := len(s.slate)
	s.slate = legislator.MergeSlate(s.slate, roster)
	s.logger.Info("roster fill merged",
		"jurisdiction", jurisdiction, "before", before, "after", len(s.slate))
}

// Slate returns a copy of the current working slate
func (s *Session) Slate() []domain.Legislator {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotSlate(s.slate)
}

// Issues lists the issue catalog
func (s *Session) Issues() []domain.Issue {
	return s.catalog.List()
}

// IssueDetail is what the issue view renders
type IssueDetail struct {
	Issue      domain.Issue
	Bills      []domain.Bill
	Supporters []domain.RankedSupporter
	Opposed    []domain.Opposition
}

// topSummarySize is the fixed prefix shown by the compact summary widget
const topSummarySize = 3

// ShowIssueDetail populates the bill cache for the issue under the session
// jurisdiction and runs the guarded stance aggregation over the slate.
func (s *Session) ShowIssueDetail(ctx context.Context, issueID string) (IssueDetail, error) {
	iss, ok := s.catalog.Get(issueID)
	if !ok {
		return IssueDetail{}, fmt.Errorf("%w: %q", ErrUnknownIssue, issueID)
	}

	s.mu.Lock()
	jurisdiction := s.jurisdiction
	s.mu.Unlock()
	if jurisdiction == "" {
		return IssueDetail{}, ErrNoSlate
	}

	supporters, err := s.LoadTopSupporters(ctx, issueID, topSummarySize)
	if err != nil {
		return IssueDetail{}, err
	}

	// the supporters computation has already populated this cache slot
	fetched, _ := s.cache.Lookup(issueID, jurisdiction)

	s.mu.Lock()
	slate := snapshotSlate(s.slate)
	s.mu.Unlock()

	return IssueDetail{
		Issue:      iss,
		Bills:      fetched,
		Supporters: supporters,
		Opposed:    alignment.Opposed(slate, fetched),
	}, nil
}

// LoadRepAlignment scores one slate legislator against an issue. Federal
// officials are scored against bills cached under jurisdiction "Federal";
// state officials against the session's state jurisdiction.
func (s *Session) LoadRepAlignment(ctx context.Context, legislatorName, issueID string) (domain.AlignmentResult, error) {
	iss, ok := s.catalog.Get(issueID)
	if !ok {
		return domain.AlignmentResult{}, fmt.Errorf("%w: %q", ErrUnknownIssue, issueID)
	}

	s.mu.Lock()
	jurisdiction := s.jurisdiction
	leg, found := findLegislator(s.slate, legislatorName)
	s.mu.Unlock()

	if jurisdiction == "" {
		return domain.AlignmentResult{}, ErrNoSlate
	}
	if !found {
		return domain.AlignmentResult{}, fmt.Errorf("%w: %q", ErrUnknownLegislator, legislatorName)
	}

	billJurisdiction := jurisdiction
	if leg.Level == domain.LevelCongress {
		billJurisdiction = domain.JurisdictionFederal
	}

	fetched, err := s.cache.FetchIssueBills(ctx, iss, billJurisdiction)
	if err != nil {
		return domain.AlignmentResult{}, err
	}

	return s.scorer.Score(leg, issueID, fetched), nil
}

// LoadTopSupporters ranks the slate's supporters of an issue. The bill fetch
// may be slow; if a newer lookup or supporters computation starts before this
// one finishes, the result is discarded and ErrStale returned so stale data
// never overwrites newer state.
func (s *Session) LoadTopSupporters(ctx context.Context, issueID string, limit int) ([]domain.RankedSupporter, error) {
	iss, ok := s.catalog.Get(issueID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIssue, issueID)
	}

	token := s.guard.Begin()

	s.mu.Lock()
	jurisdiction := s.jurisdiction
	slate := snapshotSlate(s.slate)
	s.mu.Unlock()
	if jurisdiction == "" {
		return nil, ErrNoSlate
	}

	fetched, err := s.cache.FetchIssueBills(ctx, iss, jurisdiction)
	if err != nil {
		return nil, err
	}

	if token.Stale() {
		s.logger.Debug("top supporters discarded", "issue", issueID)
		return nil, ErrStale
	}

	ranked := alignment.TopSupporters(s.scorer, slate, issueID, fetched, limit)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token.Stale() {
		s.logger.Debug("top supporters discarded", "issue", issueID)
		return nil, ErrStale
	}
	s.topSupporters = ranked
	s.topIssueID = issueID

	return ranked, nil
}

// CurrentRanking returns the last successfully written supporters ranking and
// the issue it belongs to.
func (s *Session) CurrentRanking() (string, []domain.RankedSupporter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RankedSupporter, len(s.topSupporters))
	copy(out, s.topSupporters)
	return s.topIssueID, out
}

func snapshotSlate(slate []domain.Legislator) []domain.Legislator {
	out := make([]domain.Legislator, len(slate))
	copy(out, slate)
	return out
}

func findLegislator(slate []domain.Legislator, name string) (domain.Legislator, bool) {
	// exact display-name match first, then the last-name heuristic
	for _, leg := range slate {
		if leg.Name == name {
			return leg, true
		}
	}
	last := domain.NormalizeLastName(name)
	for _, leg := range slate {
		if leg.LastName == last {
			return leg, true
		}
	}
	return domain.Legislator{}, false
}
