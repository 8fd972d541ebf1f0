// Package config holds the compiled-in feed and keyword defaults.
// Both lists are injected into the aggregator at construction so tests
// can substitute their own sets.
package config

// Source is a single RSS feed endpoint.
type Source struct {
	Name string // Display name, e.g. "Hacker News"
	URL  string // Feed URL
}

// DefaultSources returns the built-in feed list.
func DefaultSources() []Source {
	return []Source{
		{Name: "Hacker News", URL: "https://news.ycombinator.com/rss"},
		{Name: "Ars Technica", URL: "https://feeds.arstechnica.com/arstechnica/index"},
		{Name: "TechRadar", URL: "https://www.techradar.com/feeds/news"},
		{Name: "Bloomberg Markets", URL: "https://feeds.bloomberg.com/markets/news.rss"},
		{Name: "The Verge", URL: "https://feeds.theverge.com/theverge/index.xml"},
		{Name: "DEV Community", URL: "https://dev.to/feed"},
		{Name: "NYT Technology", URL: "https://rss.nytimes.com/services/xml/rss/nyt/Technology.xml"},
	}
}

// DefaultKeywords returns the built-in keyword list used to filter items.
// Multi-word entries match only as contiguous phrases.
func DefaultKeywords() []string {
	return []string{
		"ai", "artificial intelligence", "machine learning", "deep learning", "neural",
		"algorithm", "computer science", "programming", "software", "developer",
		"coding", "python", "rust", "golang", "linux", "kernel", "cybersecurity",
		"hacker", "data science", "llm", "gpt", "transformer", "compiler",
		"distributed system", "cloud computing", "aws", "azure", "google cloud",
	}
}
