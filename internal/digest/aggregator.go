// Package digest runs the feed aggregation pipeline: fetch every
// configured source, parse, filter by keyword, rank, and truncate to a
// display budget.
package digest

import (
	"context"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abelbrown/newsbrief/internal/config"
	"github.com/abelbrown/newsbrief/internal/dates"
	"github.com/abelbrown/newsbrief/internal/feeds"
	"github.com/abelbrown/newsbrief/internal/filter"
	"github.com/abelbrown/newsbrief/internal/logging"
	"github.com/abelbrown/newsbrief/internal/sanitize"
	"github.com/abelbrown/newsbrief/internal/store"
)

// DefaultLimit is how many items a digest shows unless overridden.
const DefaultLimit = 4

// descriptionBudget is the rune cap applied to sanitized descriptions.
const descriptionBudget = 200

// NoDescription is shown for items whose feed entry had no
// description element.
const NoDescription = "No description."

// maxConcurrentFetches bounds parallel source fetches.
const maxConcurrentFetches = 4

// Mode selects the ranking applied after collection.
type Mode int

const (
	// ModeDate sorts newest first; deterministic for a fixed fetch set.
	ModeDate Mode = iota
	// ModeShuffle randomizes order with no determinism guarantee.
	ModeShuffle
)

// Item is one filtered, sanitized news entry ready for display.
// Title is always non-empty; Published is the zero-time sentinel when
// the feed's pubDate didn't parse.
type Item struct {
	Title       string
	Link        string
	Description string
	Published   time.Time
	SourceName  string
	SourceURL   string
}

// fetcher is the slice of fetch.Fetcher the aggregator needs.
// Interface for test injection.
type fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Aggregator orchestrates the pipeline across all configured sources.
// Sources and keywords are fixed at construction.
type Aggregator struct {
	fetcher  fetcher
	sources  []config.Source
	keywords *filter.Keywords
	cache    *store.Cache // nil disables caching
	cacheTTL time.Duration
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithCache enables the feed cache with the given freshness window.
func WithCache(c *store.Cache, ttl time.Duration) Option {
	return func(a *Aggregator) {
		a.cache = c
		a.cacheTTL = ttl
	}
}

// New creates an Aggregator over the given sources and keywords.
func New(f fetcher, sources []config.Source, keywords *filter.Keywords, opts ...Option) *Aggregator {
	// Copy so a caller mutating its slice can't change our set.
	srcs := make([]config.Source, len(sources))
	copy(srcs, sources)

	a := &Aggregator{
		fetcher:  f,
		sources:  srcs,
		keywords: keywords,
		cacheTTL: store.DefaultTTL,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Collect runs one aggregation pass and returns at most limit items
// ranked per mode. A failing source contributes zero items and never
// aborts the others. limit <= 0 means DefaultLimit.
func (a *Aggregator) Collect(ctx context.Context, mode Mode, limit int) []Item {
	if limit <= 0 {
		limit = DefaultLimit
	}

	// Fetch sources concurrently but keep results indexed by source
	// order, so collection order (and therefore date-mode tie-breaking)
	// doesn't depend on completion order.
	perSource := make([][]Item, len(a.sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, src := range a.sources {
		g.Go(func() error {
			perSource[i] = a.collectSource(gctx, src)
			return nil
		})
	}
	// Workers never return errors; failures are absorbed per source.
	_ = g.Wait()

	var all []Item
	for _, items := range perSource {
		all = append(all, items...)
	}

	switch mode {
	case ModeShuffle:
		rand.Shuffle(len(all), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
	default:
		// Newest first. Stable, so items sharing a timestamp (notably
		// the sentinel) keep collection order.
		sort.SliceStable(all, func(i, j int) bool {
			return all[i].Published.After(all[j].Published)
		})
	}

	if limit > len(all) {
		limit = len(all)
	}
	return all[:limit]
}

// collectSource fetches and converts one source. Every failure mode
// ends in an empty slice; nothing propagates.
func (a *Aggregator) collectSource(ctx context.Context, src config.Source) []Item {
	body := a.loadFeed(ctx, src.URL)
	if len(body) == 0 {
		return nil
	}

	raw := feeds.Parse(body)
	if len(raw) == 0 {
		logging.Debug("feed yielded no items", "source", src.Name)
		return nil
	}

	items := make([]Item, 0, len(raw))
	for _, entry := range raw {
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			continue
		}
		if !a.keywords.Match(entry.Title, entry.Description) {
			continue
		}

		desc := NoDescription
		if entry.Description != "" {
			// The ellipsis marker is appended to every non-empty
			// description, truncated or not. Longstanding behavior,
			// kept as-is.
			desc = sanitize.Truncate(sanitize.Clean(entry.Description), descriptionBudget) + "..."
		}

		items = append(items, Item{
			Title:       title,
			Link:        strings.TrimSpace(entry.Link),
			Description: desc,
			Published:   dates.Normalize(entry.PubDate),
			SourceName:  src.Name,
			SourceURL:   src.URL,
		})
	}

	logging.Debug("source collected", "source", src.Name, "kept", len(items), "seen", len(raw))
	return items
}

// loadFeed returns the raw body for url, from cache when fresh, the
// network otherwise. Returns nil when both paths fail.
func (a *Aggregator) loadFeed(ctx context.Context, url string) []byte {
	if a.cache != nil {
		if body, ok := a.cache.Get(url, a.cacheTTL); ok {
			logging.Debug("cache hit", "url", url)
			return body
		}
	}

	body, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		logging.Warn("source skipped", "url", url, "err", err)
		return nil
	}

	if a.cache != nil {
		if err := a.cache.Put(url, body); err != nil {
			logging.Warn("cache write failed", "url", url, "err", err)
		}
	}
	return body
}
