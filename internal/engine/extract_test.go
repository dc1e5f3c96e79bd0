package engine

import "testing"

const ddgPage = `<html><body>
<div class="result">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fgo.dev%2Fdoc%2F&rut=abc">Go Documentation</a>
  <a class="result__snippet" href="#">The Go programming language docs.</a>
</div>
<div class="result">
  <a class="result__a" href="https://golang.org/pkg/">Package Index</a>
</div>
<div class="result">
  <a class="result__a" href="https://example.com/untitled"></a>
</div>
</body></html>`

func TestExtractDuckDuckGo(t *testing.T) {
	results, err := Extract(ddgPage, "duckduckgo")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2 (untitled entry skipped)", len(results))
	}

	if results[0].Title != "Go Documentation" {
		t.Errorf("title = %q", results[0].Title)
	}
	if results[0].URL != "https://go.dev/doc/" {
		t.Errorf("redirect not unwrapped: %q", results[0].URL)
	}
	if results[0].Snippet != "The Go programming language docs." {
		t.Errorf("snippet = %q", results[0].Snippet)
	}

	if results[1].URL != "https://golang.org/pkg/" {
		t.Errorf("plain URL mangled: %q", results[1].URL)
	}
	if results[1].Snippet != "" {
		t.Errorf("expected empty snippet, got %q", results[1].Snippet)
	}
}

func TestDDGUnwrapURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fa&rut=x", "https://example.com/a"},
		{"https://example.com/direct", "https://example.com/direct"},
		{"//duckduckgo.com/l/?rut=x", "//duckduckgo.com/l/?rut=x"}, // no uddg param
	}
	for _, tt := range tests {
		if got := ddgUnwrapURL(tt.in); got != tt.want {
			t.Errorf("ddgUnwrapURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

const bravePage = `<html><body>
<div class="snippet fdb">
  <a href="https://go.dev/blog/">
    <h3>The Go Blog</h3>
  </a>
  <p>News and insights from the Go team.</p>
</div>
<div class="snippet">
  <a href="https://golang.org/ref/spec">Go Spec</a>
</div>
<div class="other">
  <a href="https://skipped.example.com">not a snippet container</a>
</div>
</body></html>`

func TestExtractBrave(t *testing.T) {
	results, err := Extract(bravePage, "brave")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}

	if results[0].Title != "The Go Blog" || results[0].URL != "https://go.dev/blog/" {
		t.Errorf("first = %+v", results[0])
	}
	if results[0].Snippet != "News and insights from the Go team." {
		t.Errorf("snippet = %q", results[0].Snippet)
	}

	// No heading: falls back to anchor text.
	if results[1].Title != "Go Spec" {
		t.Errorf("fallback title = %q", results[1].Title)
	}
}

const mojeekPage = `<html><body>
<article class="result">
  <h3>Mojeek Result</h3>
  <a href="https://example.org/page">link</a>
  <p class="desc">An independent result description.</p>
</article>
</body></html>`

func TestExtractMojeek(t *testing.T) {
	results, err := Extract(mojeekPage, "mojeek")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	r := results[0]
	if r.Title != "Mojeek Result" || r.URL != "https://example.org/page" {
		t.Errorf("got %+v", r)
	}
	if r.Snippet != "An independent result description." {
		t.Errorf("snippet = %q", r.Snippet)
	}
}

const genericPage = `<html><body>
<div><a href="http://example.com/kept">a title long enough to keep</a></div>
<div><a href="http://example.com/short">tiny</a></div>
<div><a href="/relative/path">relative link with long title</a></div>
<span><a href="http://example.com/wrong-parent">parent is not a block container</a></span>
<li><a href="http://example.com/listed">list item result title here</a></li>
</body></html>`

func TestExtractGenericFallback(t *testing.T) {
	// ecosia has no dedicated extractor.
	results, err := Extract(genericPage, "ecosia")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].URL != "http://example.com/kept" {
		t.Errorf("first = %+v", results[0])
	}
	if results[1].URL != "http://example.com/listed" {
		t.Errorf("second = %+v", results[1])
	}
}

func TestExtractEmptyPage(t *testing.T) {
	for _, eng := range []string{"duckduckgo", "brave", "mojeek", "startpage"} {
		results, err := Extract("<html><body></body></html>", eng)
		if err != nil {
			t.Errorf("%s: %v", eng, err)
		}
		if len(results) != 0 {
			t.Errorf("%s: results = %d, want 0", eng, len(results))
		}
	}
}
