package bills

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/civicsignal/repalign/internal/domain"
	"github.com/civicsignal/repalign/pkg/logging"
)

type fakeSource struct {
	mu       sync.Mutex
	calls    int
	keywords []string
	byQuery  map[string][]domain.Bill
	failOn   map[string]error
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) BillsBySubject(_ context.Context, _, keyword string, _ int) ([]domain.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.keywords = append(f.keywords, keyword)
	if err := f.failOn[keyword]; err != nil {
		return nil, err
	}
	return f.byQuery[keyword], nil
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func noSleep(_ context.Context, _ time.Duration) error { return nil }

func testLogger() *logging.Logger { return logging.New("error") }

func healthcareIssue() domain.Issue {
	return domain.Issue{
		ID:       "healthcare",
		Title:    "Healthcare",
		Keywords: []string{"health insurance", "medicaid", "prescription drug"},
	}
}

func TestFetchIssueBillsMergesAndDeduplicates(t *testing.T) {
	source := &fakeSource{
		byQuery: map[string][]domain.Bill{
			"health insurance": {
				{Identifier: "S 100", RecordID: "r-100"},
				{Identifier: "S 101", RecordID: "r-101"},
			},
			"medicaid": {
				{Identifier: "S 101", RecordID: "r-101"}, // overlaps the first keyword
				{Identifier: "S 102", RecordID: "r-102"},
			},
			"prescription drug": {},
		},
	}

	cache, err := NewCache(source, testLogger(), WithSleep(noSleep))
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	bills, err := cache.FetchIssueBills(context.Background(), healthcareIssue(), "Massachusetts")
	if err != nil {
		t.Fatalf("FetchIssueBills: %v", err)
	}

	if len(bills) != 3 {
		t.Fatalf("got %d bills, want 3 after dedup", len(bills))
	}
	if source.callCount() != 3 {
		t.Errorf("source queried %d times, want one per keyword", source.callCount())
	}
}

func TestFetchIssueBillsFetchesOncePerKey(t *testing.T) {
	source := &fakeSource{
		byQuery: map[string][]domain.Bill{
			"health insurance": {{Identifier: "S 100", RecordID: "r-100"}},
		},
	}

	cache, err := NewCache(source, testLogger(), WithSleep(noSleep))
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	ctx := context.Background()
	iss := healthcareIssue()

	if _, err := cache.FetchIssueBills(ctx, iss, "Massachusetts"); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	first := source.callCount()

	if _, err := cache.FetchIssueBills(ctx, iss, "Massachusetts"); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if source.callCount() != first {
		t.Errorf("second fetch hit the network: %d -> %d calls", first, source.callCount())
	}

	// same issue under a different jurisdiction is a distinct key
	if _, err := cache.FetchIssueBills(ctx, iss, domain.JurisdictionFederal); err != nil {
		t.Fatalf("federal fetch: %v", err)
	}
	if source.callCount() == first {
		t.Errorf("distinct jurisdiction reused the state entry")
	}
}

func TestFetchIssueBillsCachesPartialResult(t *testing.T) {
	source := &fakeSource{
		byQuery: map[string][]domain.Bill{
			"health insurance": {
				{Identifier: "S 100", RecordID: "r-100"},
				{Identifier: "S 101", RecordID: "r-101"},
			},
			"prescription drug": {
				{Identifier: "S 103", RecordID: "r-103"},
			},
		},
		failOn: map[string]error{"medicaid": errors.New("rate limited")},
	}

	cache, err := NewCache(source, testLogger(), WithSleep(noSleep))
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	bills, err := cache.FetchIssueBills(context.Background(), healthcareIssue(), "Massachusetts")
	if err != nil {
		t.Fatalf("FetchIssueBills: %v", err)
	}
	if len(bills) != 3 {
		t.Fatalf("got %d bills, want 3 from the two surviving keywords", len(bills))
	}

	cached, ok := cache.Lookup("healthcare", "Massachusetts")
	if !ok {
		t.Fatal("partial result was not cached")
	}
	if len(cached) != 3 {
		t.Errorf("cached %d bills, want 3", len(cached))
	}
}

func TestFetchIssueBillsCachesEmptyResult(t *testing.T) {
	source := &fakeSource{}

	cache, err := NewCache(source, testLogger(), WithSleep(noSleep))
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	bills, err := cache.FetchIssueBills(context.Background(), healthcareIssue(), "Massachusetts")
	if err != nil {
		t.Fatalf("FetchIssueBills: %v", err)
	}
	if bills == nil || len(bills) != 0 {
		t.Fatalf("got %v, want a non-nil empty slice", bills)
	}

	first := source.callCount()
	if _, err := cache.FetchIssueBills(context.Background(), healthcareIssue(), "Massachusetts"); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if source.callCount() != first {
		t.Errorf("empty result was not cached: %d -> %d calls", first, source.callCount())
	}
}

func TestFetchIssueBillsSleepsBetweenKeywords(t *testing.T) {
	source := &fakeSource{}

	var sleeps []time.Duration
	cache, err := NewCache(source, testLogger(),
		WithQueryDelay(250*time.Millisecond),
		WithSleep(func(_ context.Context, d time.Duration) error {
			sleeps = append(sleeps, d)
			return nil
		}),
	)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	if _, err := cache.FetchIssueBills(context.Background(), healthcareIssue(), "Massachusetts"); err != nil {
		t.Fatalf("FetchIssueBills: %v", err)
	}

	// no sleep before the first keyword, one between each pair after
	if len(sleeps) != 2 {
		t.Fatalf("slept %d times for 3 keywords, want 2", len(sleeps))
	}
	for _, d := range sleeps {
		if d != 250*time.Millisecond {
			t.Errorf("sleep = %v, want the configured delay", d)
		}
	}
}

func TestResetDropsAllEntries(t *testing.T) {
	source := &fakeSource{}

	cache, err := NewCache(source, testLogger(), WithSleep(noSleep))
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	if _, err := cache.FetchIssueBills(context.Background(), healthcareIssue(), "Massachusetts"); err != nil {
		t.Fatalf("FetchIssueBills: %v", err)
	}
	if _, ok := cache.Lookup("healthcare", "Massachusetts"); !ok {
		t.Fatal("entry missing before reset")
	}

	cache.Reset()

	if _, ok := cache.Lookup("healthcare", "Massachusetts"); ok {
		t.Fatal("entry survived reset")
	}
	before := source.callCount()
	if _, err := cache.FetchIssueBills(context.Background(), healthcareIssue(), "Massachusetts"); err != nil {
		t.Fatalf("post-reset fetch: %v", err)
	}
	if source.callCount() == before {
		t.Errorf("post-reset fetch did not hit the network")
	}
}

func TestConcurrentFetchersShareOneFetch(t *testing.T) {
	source := &fakeSource{
		byQuery: map[string][]domain.Bill{
			"health insurance": {{Identifier: "S 100", RecordID: "r-100"}},
		},
	}

	cache, err := NewCache(source, testLogger(), WithSleep(noSleep))
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.FetchIssueBills(context.Background(), healthcareIssue(), "Massachusetts"); err != nil {
				t.Errorf("FetchIssueBills: %v", err)
			}
		}()
	}
	wg.Wait()

	if source.callCount() != 3 {
		t.Errorf("source queried %d times across 8 callers, want one fetch of 3 keywords", source.callCount())
	}
}

func TestKey(t *testing.T) {
	if got := Key("healthcare", "Massachusetts"); got != "healthcare_Massachusetts" {
		t.Errorf("Key = %q, want healthcare_Massachusetts", got)
	}
}

func TestRouteDispatchesOnJurisdiction(t *testing.T) {
	federal := &fakeSource{byQuery: map[string][]domain.Bill{"k": {{RecordID: "fed"}}}}
	state := &fakeSource{byQuery: map[string][]domain.Bill{"k": {{RecordID: "state"}}}}

	routed, err := Route(federal, state)
	if err != nil {
		t.Fatalf("Route: %v", err)
	}

	got, err := routed.BillsBySubject(context.Background(), domain.JurisdictionFederal, "k", 10)
	if err != nil {
		t.Fatalf("federal dispatch: %v", err)
	}
	if len(got) != 1 || got[0].RecordID != "fed" {
		t.Errorf("federal dispatch returned %v", got)
	}

	got, err = routed.BillsBySubject(context.Background(), "Massachusetts", "k", 10)
	if err != nil {
		t.Fatalf("state dispatch: %v", err)
	}
	if len(got) != 1 || got[0].RecordID != "state" {
		t.Errorf("state dispatch returned %v", got)
	}
}
