// Package sections converts blog post HTML to and from the ordered
// text/image blocks the admin editor works with. Block boundaries survive
// storage through class markers on wrapping divs; the format is emitted by
// Compose itself, so parsing is a plain marker scan rather than a full HTML
// parse.
package sections

import (
	"fmt"
	"strings"
)

const (
	textOpen  = `<div class="blog-text">`
	imageOpen = `<div class="blog-image">`
	blockEnd  = `</div>`
)

// Section is one editable block: rich text, an image, or both (an image
// closes the section it belongs to).
type Section struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Image string `json:"image"`
}

// Parse splits stored post HTML into editor sections. Legacy content with no
// recognized markers is wrapped wholesale into a single text section; empty
// input yields one empty placeholder so the editor always has a block.
func Parse(html string) []Section {
	html = strings.TrimSpace(html)
	if html == "" {
		return []Section{{ID: 1}}
	}
	if !strings.Contains(html, textOpen) && !strings.Contains(html, imageOpen) {
		return []Section{{ID: 1, Text: html}}
	}

	var out []Section
	open := false // a text section is open and may still receive an image

	for len(html) > 0 {
		ti := strings.Index(html, textOpen)
		ii := strings.Index(html, imageOpen)
		if ti < 0 && ii < 0 {
			break
		}

		if ti >= 0 && (ii < 0 || ti < ii) {
			inner, rest := cutBlock(html[ti+len(textOpen):])
			out = append(out, Section{ID: len(out) + 1, Text: inner})
			open = true
			html = rest
			continue
		}

		inner, rest := cutBlock(html[ii+len(imageOpen):])
		src := imageSrc(inner)
		if open {
			out[len(out)-1].Image = src
			open = false
		} else {
			out = append(out, Section{ID: len(out) + 1, Image: src})
		}
		html = rest
	}

	if len(out) == 0 {
		return []Section{{ID: 1}}
	}
	return out
}

// Compose is the inverse of Parse: it walks the sections in order and emits
// a marked block per non-empty text and per image. Parse(Compose(s)) == s
// for any list the editor produces.
func Compose(sections []Section) string {
	var b strings.Builder
	for _, s := range sections {
		if text := strings.TrimSpace(s.Text); text != "" && !emptyParagraph(text) {
			b.WriteString(textOpen)
			b.WriteString(text)
			b.WriteString(blockEnd)
		}
		if s.Image != "" {
			b.WriteString(imageOpen)
			fmt.Fprintf(&b, `<img src="%s" />`, s.Image)
			b.WriteString(blockEnd)
		}
	}
	return b.String()
}

// cutBlock returns the content up to the closing div and the remainder after
// it. Marker blocks wrap paragraph-level markup, never nested divs.
func cutBlock(s string) (inner, rest string) {
	end := strings.Index(s, blockEnd)
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end+len(blockEnd):]
}

func imageSrc(block string) string {
	_, after, found := strings.Cut(block, `src="`)
	if !found {
		return ""
	}
	src, _, _ := strings.Cut(after, `"`)
	return src
}

func emptyParagraph(text string) bool {
	switch text {
	case "<p></p>", "<p><br></p>", "<p><br/></p>", "<p><br /></p>":
		return true
	}
	return false
}
