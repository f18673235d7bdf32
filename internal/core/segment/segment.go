// Package segment splits freeform generated prose into display sections.
//
// The upstream text generator produces inconsistent structure: sometimes
// markdown headers, sometimes em-dash separator lines, sometimes one giant
// blob. Sections applies those three strategies in strict priority order so
// the rendered output stays readable regardless of which style appears.
package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Section is one display chunk of an interpretation
type Section struct {
	Heading string `json:"heading,omitempty"`
	Body    string `json:"body"`
}

const (
	// paragraphs longer than this get split at a sentence boundary
	longParagraph = 300

	// inputs shorter than this are never grouped
	shortTotal = 500

	// max consecutive paragraphs per grouped section
	groupSize = 3

	// a sentence split must land no earlier than this share of the window
	minSplitRatio = 0.3
)

const headingMarker = "## "

var (
	dashRunRe = regexp.MustCompile(`\x{2014}{3,}`)
	blankRe   = regexp.MustCompile(`\n{2,}`)
)

// Sections splits raw text into ordered display sections.
// Empty or whitespace-only input yields an empty result.
func Sections(raw string) []Section {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}

	if hasHeadingLine(text) {
		if secs := splitHeadings(text); len(secs) > 0 {
			return secs
		}
		// nothing usable came out of the split, keep the whole text
		return []Section{{Body: text}}
	}

	if dashRunRe.MatchString(text) {
		return splitDashRuns(text)
	}

	return splitParagraphs(text)
}

// hasHeadingLine reports whether any line starts with the markdown marker
func hasHeadingLine(text string) bool {
	if strings.HasPrefix(text, headingMarker) {
		return true
	}
	return strings.Contains(text, "\n"+headingMarker)
}

// splitHeadings cuts the text at every markdown heading line. The heading
// line becomes the section heading and the lines up to the next heading
// become its body. Prose before the first heading is emitted heading-less;
// a heading with no body is still emitted with an empty body.
func splitHeadings(text string) []Section {
	var (
		secs []Section
		cur  *Section
		body []string
	)
	flush := func() {
		b := strings.TrimSpace(strings.Join(body, "\n"))
		switch {
		case cur != nil && (cur.Heading != "" || b != ""):
			cur.Body = b
			secs = append(secs, *cur)
		case cur == nil && b != "":
			secs = append(secs, Section{Body: b})
		}
		cur, body = nil, nil
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, headingMarker) {
			flush()
			h := strings.TrimSpace(strings.TrimPrefix(line, headingMarker))
			cur = &Section{Heading: h}
			continue
		}
		body = append(body, line)
	}
	flush()
	return secs
}

// splitDashRuns cuts the text on every run of three or more em-dashes,
// keeping each non-empty trimmed block as a heading-less section
func splitDashRuns(text string) []Section {
	secs := []Section{}
	for _, block := range dashRunRe.Split(text, -1) {
		if b := strings.TrimSpace(block); b != "" {
			secs = append(secs, Section{Body: b})
		}
	}
	return secs
}

// splitParagraphs is the fallback: blank-line paragraphs, oversize ones cut
// at a sentence boundary, then grouped when the input is long enough
func splitParagraphs(text string) []Section {
	var paras []string
	for _, p := range blankRe.Split(text, -1) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		paras = append(paras, splitLong(p)...)
	}

	if utf8.RuneCountInString(text) < shortTotal || len(paras) <= 2 {
		secs := make([]Section, 0, len(paras))
		for _, p := range paras {
			secs = append(secs, Section{Body: p})
		}
		return secs
	}

	var secs []Section
	for i := 0; i < len(paras); i += groupSize {
		end := i + groupSize
		if end > len(paras) {
			end = len(paras)
		}
		// paragraphs inside a group stay blank-line separated so the
		// renderer can still show them as distinct blocks
		secs = append(secs, Section{Body: strings.Join(paras[i:end], "\n\n")})
	}
	return secs
}

// splitLong cuts an oversize paragraph at the last sentence boundary inside
// the first longParagraph runes, provided the cut lands no earlier than
// minSplitRatio into the window. A paragraph with no acceptable boundary is
// kept whole rather than cut mid-sentence.
func splitLong(p string) []string {
	if utf8.RuneCountInString(p) <= longParagraph {
		return []string{p}
	}
	window := string([]rune(p)[:longParagraph])
	cut := -1
	for _, mark := range []string{". ", "! ", "? "} {
		if i := strings.LastIndex(window, mark); i > cut {
			cut = i
		}
	}
	if cut < 0 || utf8.RuneCountInString(window[:cut]) < int(minSplitRatio*longParagraph) {
		return []string{p}
	}
	head := strings.TrimSpace(p[:cut+1])
	rest := strings.TrimSpace(p[cut+1:])
	if rest == "" {
		return []string{head}
	}
	return append([]string{head}, splitLong(rest)...)
}
