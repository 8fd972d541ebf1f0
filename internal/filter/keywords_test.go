package filter

import "testing"

func TestMatchWordBoundary(t *testing.T) {
	k := NewKeywords([]string{"ai"})

	cases := []struct {
		name  string
		title string
		desc  string
		want  bool
	}{
		{name: "exact word", title: "AI breakthrough announced", want: true},
		{name: "lowercase", title: "the ai did it", want: true},
		{name: "inside said", title: "he said nothing", want: false},
		{name: "inside aim", title: "taking aim at the market", want: false},
		{name: "inside maid", title: "the maid cleaned up", want: false},
		{name: "punctuation boundary", title: "What is AI?", want: true},
		{name: "match in description only", title: "Quarterly results", desc: "driven by ai workloads", want: true},
		{name: "no match anywhere", title: "Gardening tips", desc: "tomatoes and basil", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := k.Match(tc.title, tc.desc); got != tc.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tc.title, tc.desc, got, tc.want)
			}
		})
	}
}

func TestMatchPhrase(t *testing.T) {
	k := NewKeywords([]string{"machine learning"})

	if !k.Match("Machine Learning in production", "") {
		t.Error("contiguous phrase should match")
	}
	if !k.Match("Advances in machine learning, reviewed", "") {
		t.Error("phrase followed by punctuation should match")
	}
	if k.Match("the machine stopped", "learning to cope") {
		t.Error("split across title and description must not match")
	}
	if k.Match("machine shop learning curve", "") {
		t.Error("non-contiguous words must not match")
	}
}

func TestMatchFirstOfMany(t *testing.T) {
	k := NewKeywords([]string{"rust", "golang", "kernel"})

	if !k.Match("New kernel release", "") {
		t.Error("any keyword in the list should match")
	}
	if k.Match("Rustic furniture trends", "") {
		t.Error("'rust' must not match inside 'rustic'")
	}
}

func TestNewKeywordsSkipsBlanks(t *testing.T) {
	k := NewKeywords([]string{"ai", "", "  ", "rust"})
	if k.Len() != 2 {
		t.Errorf("expected 2 compiled patterns, got %d", k.Len())
	}
}

func TestMatchCombinedTextSeparator(t *testing.T) {
	// A title ending in "a" and a description starting with "i" must
	// not merge into an "ai" token across the join.
	k := NewKeywords([]string{"ai"})
	if k.Match("gala", "iris season") {
		t.Error("keyword must not match across the title/description join")
	}
}
