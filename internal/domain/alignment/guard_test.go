package alignment

import (
	"sync"
	"testing"
)

func TestTokenFreshUntilSuperseded(t *testing.T) {
	var g Guard

	token := g.Begin()
	if token.Stale() {
		t.Fatal("freshly issued token reads stale")
	}

	newer := g.Begin()
	if !token.Stale() {
		t.Error("older token still fresh after a newer computation began")
	}
	if newer.Stale() {
		t.Error("newest token reads stale")
	}
}

func TestInvalidateSupersedesAllTokens(t *testing.T) {
	var g Guard

	token := g.Begin()
	g.Invalidate()

	if !token.Stale() {
		t.Error("token survived Invalidate")
	}
}

func TestGuardConcurrentBegin(t *testing.T) {
	var g Guard

	const n = 64
	tokens := make([]Token, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i] = g.Begin()
		}(i)
	}
	wg.Wait()

	// exactly one of the concurrently issued tokens is the latest
	fresh := 0
	for _, token := range tokens {
		if !token.Stale() {
			fresh++
		}
	}
	if fresh != 1 {
		t.Errorf("%d tokens read fresh, want exactly 1", fresh)
	}
}
