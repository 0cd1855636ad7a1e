package bills

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/civicsignal/repalign/internal/domain"
	"github.com/civicsignal/repalign/pkg/logging"
)

const (
	defaultQueryDelay = 500 * time.Millisecond
	defaultQueryLimit = 20
)

// Cache memoizes issue bill lookups per (issue, jurisdiction) pair so repeated
// UI interactions within a session never re-issue network calls. An entry is
// fetched exactly once per distinct key and read thereafter; entries are never
// evicted or refreshed until a full Reset.
type Cache struct {
	source Source
	logger *logging.Logger
	delay  time.Duration
	limit  int
	sleep  func(ctx context.Context, d time.Duration) error

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	ready chan struct{}
	bills []domain.Bill
}

// Option configures a Cache
type Option func(*Cache)

// WithQueryDelay sets the fixed interval between per-keyword queries
func WithQueryDelay(d time.Duration) Option {
	return func(c *Cache) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithQueryLimit caps results per keyword query
func WithQueryLimit(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithSleep overrides the inter-query wait, for tests
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Cache) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// NewCache builds a bill cache over a search backend
func NewCache(source Source, logger *logging.Logger, opts ...Option) (*Cache, error) {
	if source == nil {
		return nil, fmt.Errorf("bills.Cache: source is required")
	}

	c := &Cache{
		source:  source,
		logger:  logger,
		delay:   defaultQueryDelay,
		limit:   defaultQueryLimit,
		sleep:   sleepCtx,
		entries: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Key is the composite cache key for an (issue, jurisdiction) pair
func Key(issueID, jurisdiction string) string {
	return issueID + "_" + jurisdiction
}

// FetchIssueBills returns the deduplicated union of bills matching the issue's
// keywords within a jurisdiction. The first call for a key issues one query per
// keyword, strictly sequentially with a fixed delay between queries to respect
// the upstream rate limit. A failed keyword query is logged and skipped; the
// (possibly partial, possibly empty) union is cached regardless. Subsequent
// calls for the same key return the stored value without network access;
// concurrent callers for an in-flight key wait for the first fetch to finish.
func (c *Cache) FetchIssueBills(ctx context.Context, issue domain.Issue, jurisdiction string) ([]domain.Bill, error) {
	key := Key(issue.ID, jurisdiction)

	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		c.mu.Unlock()
		select {
		case <-e.ready:
			return e.bills, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	e := &entry{ready: make(chan struct{})}
	c.entries[key] = e
	c.mu.Unlock()

	e.bills = c.fetch(ctx, issue, jurisdiction)
	close(e.ready)
	return e.bills, nil
}

func (c *Cache) fetch(ctx context.Context, issue domain.Issue, jurisdiction string) []domain.Bill {
	seen := make(map[string]bool)
	var merged []domain.Bill

	for i, keyword := range issue.Keywords {
		if i > 0 && c.delay > 0 {
			if err := c.sleep(ctx, c.delay); err != nil {
				c.logger.Warn("bill fetch interrupted",
					"issue", issue.ID, "jurisdiction", jurisdiction, "err", err)
				break
			}
		}

		found, err := c.source.BillsBySubject(ctx, jurisdiction, keyword, c.limit)
		if err != nil {
			// partial data failure: skip this keyword, keep the rest
			c.logger.Warn("keyword query failed",
				"issue", issue.ID, "jurisdiction", jurisdiction, "keyword", keyword, "err", err)
			continue
		}

		for _, bill := range found {
			if seen[bill.RecordID] {
				continue
			}
			seen[bill.RecordID] = true
			merged = append(merged, bill)
		}
	}

	if merged == nil {
		merged = []domain.Bill{}
	}
	return merged
}

// Lookup returns a cached, fully fetched entry without triggering a fetch
func (c *Cache) Lookup(issueID, jurisdiction string) ([]domain.Bill, bool) {
	c.mu.Lock()
	e, ok := c.entries[Key(issueID, jurisdiction)]
	c.mu.Unlock()
	if !ok {
		return nil, false
	}
	select {
	case <-e.ready:
		return e.bills, true
	default:
		return nil, false
	}
}

// Reset drops every entry. Called on a new address search, never mid-session.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
