// Package feeds parses raw RSS 2.0 payloads into item records.
//
// Only RSS is supported. Atom payloads, malformed XML, and documents
// without a channel all come back as an empty item list; a bad feed is
// a skipped feed, never an error the pipeline has to handle.
package feeds

import (
	"bytes"

	"github.com/mmcdole/gofeed/rss"
)

// RawItem is one unvalidated feed entry. Missing elements are empty
// strings. PubDate carries the raw string; date parsing is the dates
// package's job.
type RawItem struct {
	Title       string
	Link        string
	Description string
	PubDate     string
}

// Parse interprets data as an RSS 2.0 document and returns its items.
// Anything unparseable yields nil.
func Parse(data []byte) []RawItem {
	parser := &rss.Parser{}
	feed, err := parser.Parse(bytes.NewReader(data))
	if err != nil || feed == nil {
		return nil
	}

	items := make([]RawItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if entry == nil {
			continue
		}
		items = append(items, RawItem{
			Title:       entry.Title,
			Link:        entry.Link,
			Description: entry.Description,
			PubDate:     entry.PubDate,
		})
	}

	return items
}
