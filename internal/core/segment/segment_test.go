package segment

import (
	"strings"
	"testing"
)

func TestSections_Empty(t *testing.T) {
	if got := Sections(""); len(got) != 0 {
		t.Fatalf("Sections(\"\") = %v, want empty", got)
	}
	if got := Sections("   \n\t  "); len(got) != 0 {
		t.Fatalf("whitespace-only input should yield no sections, got %v", got)
	}
}

func TestSections_Headings(t *testing.T) {
	raw := "## First\nbody one\n\n## Second\nbody two"
	secs := Sections(raw)
	if len(secs) != 2 {
		t.Fatalf("want 2 sections, got %d: %v", len(secs), secs)
	}
	if secs[0].Heading != "First" || secs[0].Body != "body one" {
		t.Fatalf("section 0 = %+v", secs[0])
	}
	if secs[1].Heading != "Second" || secs[1].Body != "body two" {
		t.Fatalf("section 1 = %+v", secs[1])
	}
}

func TestSections_LeadingProseIsHeadingless(t *testing.T) {
	secs := Sections("intro paragraph\n## Topic\ndetails")
	if len(secs) != 2 {
		t.Fatalf("want 2 sections, got %d: %v", len(secs), secs)
	}
	if secs[0].Heading != "" || secs[0].Body != "intro paragraph" {
		t.Fatalf("leading prose section = %+v", secs[0])
	}
	if secs[1].Heading != "Topic" || secs[1].Body != "details" {
		t.Fatalf("heading section = %+v", secs[1])
	}
}

func TestSections_HeadingOnlyBlockKept(t *testing.T) {
	secs := Sections("## Alone")
	if len(secs) != 1 {
		t.Fatalf("want 1 section, got %d: %v", len(secs), secs)
	}
	if secs[0].Heading != "Alone" || secs[0].Body != "" {
		t.Fatalf("section = %+v", secs[0])
	}
}

func TestSections_HeadingTakesPriorityOverDashes(t *testing.T) {
	secs := Sections("## Mix\nbody with ——— inline separators")
	if len(secs) != 1 || secs[0].Heading != "Mix" {
		t.Fatalf("heading split should win, got %v", secs)
	}
}

func TestSections_DashRuns(t *testing.T) {
	raw := "first part\n———\nsecond part\n—————\nthird"
	secs := Sections(raw)
	if len(secs) != 3 {
		t.Fatalf("want 3 sections, got %d: %v", len(secs), secs)
	}
	for i, want := range []string{"first part", "second part", "third"} {
		if secs[i].Heading != "" || secs[i].Body != want {
			t.Fatalf("section %d = %+v, want body %q", i, secs[i], want)
		}
	}
}

func TestSections_TwoDashesAreNotASeparator(t *testing.T) {
	secs := Sections("left —— right")
	if len(secs) != 1 || secs[0].Body != "left —— right" {
		t.Fatalf("two em-dashes should not split, got %v", secs)
	}
}

func TestSections_ShortParagraphsStayIndividual(t *testing.T) {
	secs := Sections("alpha\n\nbeta")
	if len(secs) != 2 {
		t.Fatalf("want 2 sections, got %d: %v", len(secs), secs)
	}
	if secs[0].Body != "alpha" || secs[1].Body != "beta" {
		t.Fatalf("sections = %v", secs)
	}
}

func TestSections_LongInputGroupsParagraphs(t *testing.T) {
	paras := make([]string, 7)
	for i := range paras {
		paras[i] = strings.Repeat("x", 80)
	}
	secs := Sections(strings.Join(paras, "\n\n"))
	if len(secs) != 3 {
		t.Fatalf("want 3 grouped sections, got %d", len(secs))
	}
	// first group holds three paragraphs joined by blank lines
	if got := strings.Count(secs[0].Body, "\n\n"); got != 2 {
		t.Fatalf("first group should contain 3 paragraphs, found %d separators", got)
	}
	// last group holds the single leftover paragraph
	if strings.Contains(secs[2].Body, "\n\n") {
		t.Fatalf("last group should hold one paragraph: %q", secs[2].Body)
	}
}

func TestSections_OversizeParagraphSplitsAtSentence(t *testing.T) {
	raw := strings.Repeat("a", 150) + ". " + strings.Repeat("b", 250)
	secs := Sections(raw)
	if len(secs) != 2 {
		t.Fatalf("want 2 sections, got %d: %v", len(secs), secs)
	}
	if !strings.HasSuffix(secs[0].Body, ".") {
		t.Fatalf("first chunk should end at the sentence boundary: %q", secs[0].Body)
	}
	if strings.Contains(secs[1].Body, "a") {
		t.Fatalf("second chunk should only hold the remainder: %q", secs[1].Body)
	}
}

func TestSections_OversizeParagraphWithoutBoundaryKeptWhole(t *testing.T) {
	raw := strings.Repeat("c", 400)
	secs := Sections(raw)
	if len(secs) != 1 || len(secs[0].Body) != 400 {
		t.Fatalf("boundary-less paragraph must not be cut, got %v", secs)
	}
}

func TestSections_EarlyBoundaryIsRejected(t *testing.T) {
	// the only sentence boundary sits before 30% of the window
	raw := strings.Repeat("d", 50) + ". " + strings.Repeat("e", 400)
	secs := Sections(raw)
	if len(secs) != 1 {
		t.Fatalf("early boundary should not split, got %d sections", len(secs))
	}
}
