package feeds

import "testing"

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <item>
      <title>Article 1</title>
      <link>http://example.com/article1</link>
      <description>First article</description>
      <pubDate>Mon, 01 Jan 2024 12:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Article 2</title>
      <link>http://example.com/article2</link>
      <description>Second article</description>
      <pubDate>Mon, 01 Jan 2024 11:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func TestParse(t *testing.T) {
	items := Parse([]byte(sampleRSS))
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	if items[0].Title != "Article 1" {
		t.Errorf("expected 'Article 1', got %q", items[0].Title)
	}
	if items[0].Link != "http://example.com/article1" {
		t.Errorf("unexpected link: %q", items[0].Link)
	}
	if items[0].Description != "First article" {
		t.Errorf("unexpected description: %q", items[0].Description)
	}
	if items[0].PubDate != "Mon, 01 Jan 2024 12:00:00 GMT" {
		t.Errorf("unexpected pubDate: %q", items[0].PubDate)
	}
}

func TestParseMissingElements(t *testing.T) {
	rss := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <item>
      <title>Only A Title</title>
    </item>
  </channel>
</rss>`

	items := Parse([]byte(rss))
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Title != "Only A Title" {
		t.Errorf("unexpected title: %q", items[0].Title)
	}
	if items[0].Link != "" || items[0].Description != "" || items[0].PubDate != "" {
		t.Errorf("missing elements should be empty strings: %+v", items[0])
	}
}

func TestParseMalformedXML(t *testing.T) {
	cases := map[string]string{
		"not xml":         "this is not xml at all",
		"truncated":       `<?xml version="1.0"?><rss version="2.0"><channel><item><title>cut`,
		"empty":           "",
		"html page":       "<html><body><p>404 not found</p></body></html>",
		"binary junk":     "\x00\x01\x02\xff\xfe",
		"wrong root":      `<?xml version="1.0"?><notrss><channel></channel></notrss>`,
		"missing channel": `<?xml version="1.0"?><rss version="2.0"></rss>`,
	}

	for name, payload := range cases {
		if items := Parse([]byte(payload)); len(items) != 0 {
			t.Errorf("%s: expected no items, got %d", name, len(items))
		}
	}
}

func TestParseAtomUnsupported(t *testing.T) {
	atom := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Feed</title>
  <entry>
    <title>Atom Entry</title>
    <link href="http://example.com/entry"/>
  </entry>
</feed>`

	if items := Parse([]byte(atom)); len(items) != 0 {
		t.Errorf("Atom payloads should be skipped, got %d items", len(items))
	}
}

func TestParseEmptyChannel(t *testing.T) {
	rss := `<?xml version="1.0"?><rss version="2.0"><channel><title>Empty</title></channel></rss>`
	if items := Parse([]byte(rss)); len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}
