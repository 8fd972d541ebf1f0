// Command newsbrief prints a short, filtered digest of tech and AI
// news from a fixed set of RSS feeds.
//
// Usage:
//
//	newsbrief              Four most recent matching items
//	newsbrief -l 10        Up to ten items
//	newsbrief -r           Shuffle instead of sorting by date
//	newsbrief --no-cache   Skip the local feed cache
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/abelbrown/newsbrief/internal/config"
	"github.com/abelbrown/newsbrief/internal/digest"
	"github.com/abelbrown/newsbrief/internal/fetch"
	"github.com/abelbrown/newsbrief/internal/filter"
	"github.com/abelbrown/newsbrief/internal/logging"
	"github.com/abelbrown/newsbrief/internal/store"
	"github.com/abelbrown/newsbrief/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		random  bool
		limit   int
		noCache bool
	)
	flag.BoolVar(&random, "r", false, "shuffle news items instead of sorting by date")
	flag.BoolVar(&random, "random", false, "shuffle news items instead of sorting by date")
	flag.IntVar(&limit, "l", digest.DefaultLimit, "number of news items to display")
	flag.IntVar(&limit, "limit", digest.DefaultLimit, "number of news items to display")
	flag.BoolVar(&noCache, "no-cache", false, "bypass the local feed cache")
	flag.Parse()

	if err := logging.Init(); err != nil {
		// Logging is diagnostics only; run without it.
		fmt.Fprintf(os.Stderr, "newsbrief: logging disabled: %v\n", err)
	}
	defer logging.Close()

	// An interrupt is a clean user cancel, not an error.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []digest.Option{}
	if !noCache {
		if cache, err := store.Open(store.DefaultPath()); err != nil {
			logging.Warn("feed cache unavailable", "err", err)
		} else {
			defer cache.Close()
			opts = append(opts, digest.WithCache(cache, store.DefaultTTL))
		}
	}

	agg := digest.New(
		fetch.New(fetch.DefaultTimeout),
		config.DefaultSources(),
		filter.NewKeywords(config.DefaultKeywords()),
		opts...,
	)

	mode := digest.ModeDate
	if random {
		mode = digest.ModeShuffle
	}

	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	fmt.Println()
	fmt.Println(ui.Header.Render("  === Latest CS & AI News ==="))
	fmt.Println()

	collect := func() []digest.Item {
		return agg.Collect(ctx, mode, limit)
	}

	var items []digest.Item
	if interactive {
		var interrupted bool
		items, interrupted = ui.FetchWithSpinner(collect)
		if interrupted {
			return 0
		}
	} else {
		items = collect()
	}

	if ctx.Err() != nil {
		// Interrupted mid-fetch; leave quietly.
		return 0
	}

	fmt.Print(ui.RenderDigest(items, interactive))
	return 0
}
