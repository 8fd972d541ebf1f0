// Package ui renders the news digest to the terminal.
//
// Presentation only: styles, OSC-8 hyperlinks, and the fetch spinner.
// Nothing here touches aggregation results beyond formatting them.
package ui

import (
	"net/url"
	"strings"

	"github.com/muesli/termenv"

	"github.com/abelbrown/newsbrief/internal/dates"
	"github.com/abelbrown/newsbrief/internal/digest"
)

// EmptyMessage is printed when no items survive filtering.
const EmptyMessage = "No relevant news found at this time."

const ruleWidth = 60

// RenderDigest formats items as the terminal digest. Hyperlinks use
// OSC-8 escape sequences only when interactive is true; piped output
// gets the bare URL.
func RenderDigest(items []digest.Item, interactive bool) string {
	if len(items) == 0 {
		return Warning.Render(EmptyMessage) + "\n"
	}

	var b strings.Builder
	rule := Rule.Render(strings.Repeat("-", ruleWidth))

	for _, item := range items {
		b.WriteString(Title.Render("• " + item.Title))
		b.WriteString("\n")

		b.WriteString("  ")
		b.WriteString(Meta.Render(Domain(item.SourceURL) + " | " + publishedLabel(item)))
		b.WriteString("\n")

		b.WriteString("  ")
		b.WriteString(Body.Render(item.Description))
		b.WriteString("\n")

		b.WriteString("  ")
		b.WriteString(LinkLabel.Render("Read more: "))
		if interactive {
			b.WriteString(termenv.Hyperlink(item.Link, item.Link))
		} else {
			b.WriteString(item.Link)
		}
		b.WriteString("\n")

		b.WriteString(rule)
		b.WriteString("\n")
	}

	return b.String()
}

// Domain extracts a display host from a feed URL, dropping any
// leading "www.".
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// publishedLabel renders the item date, or "Recent" for the sentinel.
func publishedLabel(item digest.Item) string {
	if dates.IsSentinel(item.Published) {
		return "Recent"
	}
	return item.Published.Format("2006-01-02 15:04")
}
