package sections

import (
	"reflect"
	"testing"
)

func TestParseEmptyGivesPlaceholder(t *testing.T) {
	for _, in := range []string{"", "   \n\t"} {
		got := Parse(in)
		if len(got) != 1 || got[0].Text != "" || got[0].Image != "" {
			t.Errorf("Parse(%q) = %+v, want one empty section", in, got)
		}
	}
}

func TestParseLegacyHTMLWrapsWholesale(t *testing.T) {
	legacy := "<p>Стара статия</p><p>без маркери</p>"
	got := Parse(legacy)
	if len(got) != 1 || got[0].Text != legacy || got[0].Image != "" {
		t.Fatalf("legacy wrap: got %+v", got)
	}
}

func TestParseMarkedBlocks(t *testing.T) {
	html := `<div class="blog-text"><p>Първи абзац</p></div>` +
		`<div class="blog-image"><img src="/uploads/a.jpg" /></div>` +
		`<div class="blog-text"><p>Втори абзац</p></div>`

	got := Parse(html)
	want := []Section{
		{ID: 1, Text: "<p>Първи абзац</p>", Image: "/uploads/a.jpg"},
		{ID: 2, Text: "<p>Втори абзац</p>"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse = %+v, want %+v", got, want)
	}
}

func TestParseOrphanImageOpensOwnSection(t *testing.T) {
	html := `<div class="blog-image"><img src="/uploads/cover.jpg" /></div>` +
		`<div class="blog-text"><p>Текст след снимката</p></div>`

	got := Parse(html)
	if len(got) != 2 {
		t.Fatalf("got %d sections, want 2", len(got))
	}
	if got[0].Image != "/uploads/cover.jpg" || got[0].Text != "" {
		t.Errorf("first section: %+v", got[0])
	}
	if got[1].Text != "<p>Текст след снимката</p>" {
		t.Errorf("second section: %+v", got[1])
	}
}

func TestComposeSkipsEmptyParagraphs(t *testing.T) {
	html := Compose([]Section{
		{ID: 1, Text: "<p><br></p>", Image: "/uploads/only.jpg"},
	})
	want := `<div class="blog-image"><img src="/uploads/only.jpg" /></div>`
	if html != want {
		t.Fatalf("Compose = %q, want %q", html, want)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := [][]Section{
		{
			{ID: 1, Text: "<p>Интро</p>"},
		},
		{
			{ID: 1, Text: "<p>Интро</p>", Image: "/uploads/a.jpg"},
			{ID: 2, Image: "/uploads/b.jpg"},
			{ID: 3, Text: "<p>Среда</p>", Image: "/uploads/c.jpg"},
			{ID: 4, Text: "<p>Финал</p>"},
		},
		{
			{ID: 1, Image: "/uploads/solo.jpg"},
		},
	}

	for _, secs := range cases {
		got := Parse(Compose(secs))
		if !reflect.DeepEqual(got, secs) {
			t.Errorf("round trip failed:\n in: %+v\nout: %+v", secs, got)
		}
	}
}
