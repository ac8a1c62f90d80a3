package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormat_Layout(t *testing.T) {
	g, _, _ := parseSample(t)
	out := Format(g)

	want := "title: Fruit Glossary\n" +
		"author: Jane Doe\n" +
		"---\n" +
		"Apple: #fruit !apple.png\n\tA round fruit. Grows on an => {Apple tree}[tree].\n\n" +
		"Banana: #fruit #yellow\n\tA long yellow fruit. See => Apple.\n\n" +
		"Malus: => Apple #latin\n" +
		"Apple tree: #plant\n" +
		"Cherry: #fruit !cherry.png\n" +
		"Durian: #fruit\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("format mismatch (-want +got):\n%s", diff)
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	g, dir, _ := parseSample(t)
	again, err := Parse([]byte(Format(g)), WithBaseDir(dir))
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if diff := cmp.Diff(summarize(g), summarize(again)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(g.Tags(), again.Tags()); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	if Format(again) != Format(g) {
		t.Error("formatting must be idempotent")
	}
}

func TestWordWrap(t *testing.T) {
	short := "short text "
	if got := wordWrap(short, 80); got != "short text" {
		t.Errorf("short = %q", got)
	}

	long := strings.Repeat("word ", 40)
	got := wordWrap(long, 80)
	lines := strings.Split(got, "\n\t")
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %q", got)
	}
	for _, l := range lines[:len(lines)-1] {
		if len(l) < 80 {
			t.Errorf("line broke early: %q", l)
		}
	}
	if strings.Join(strings.Fields(got), " ") != strings.TrimSpace(long) {
		t.Errorf("words lost: %q", got)
	}
}
