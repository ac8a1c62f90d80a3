package translit

import "testing"

func TestSortKey(t *testing.T) {
	cases := map[string]string{
		"Äpfel":           "apfel",
		"Straße":          "strase",
		"Über-Ich":        "uberich",
		"  Mixed Case 42": "mixedcase42",
		"#!?":             "",
	}
	for in, want := range cases {
		if got := SortKey(in); got != want {
			t.Errorf("SortKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestName(t *testing.T) {
	cases := map[string]string{
		"Äpfel":           "aepfel",
		"Straße":          "strasse",
		"Über-Ich":        "ueber-ich",
		"  Hello, World!": "hello-world",
		"Café au lait":    "cafe-au-lait",
		"a--b__c":         "a-b-c",
		"---":             "",
	}
	for in, want := range cases {
		if got := Name(in); got != want {
			t.Errorf("Name(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestName_DecomposedUmlaut(t *testing.T) {
	if got := Name("A\u0308rger"); got != "aerger" {
		t.Errorf("Name(decomposed) = %q, want %q", got, "aerger")
	}
}

func TestLaTeX_Escapes(t *testing.T) {
	cases := map[string]string{
		"50% & more":  `50{\%} {\&} more`,
		"Müller":      `M{\"u}ller`,
		"a_b":         `a{\_}b`,
		"{x}":         `{\{}x{\}}`,
		"–":           `{--}`,
		"plain ascii": "plain ascii",
		"日本":          "日本",
		"line\nbreak": "line\n\nbreak",
		"\ttab":       " tab",
	}
	for in, want := range cases {
		if got := LaTeX(in); got != want {
			t.Errorf("LaTeX(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLaTeXEquivalent_LowercaseZAccents(t *testing.T) {
	if eq, _ := LaTeXEquivalent('ź'); eq != `{\'z}` {
		t.Errorf("ź = %q", eq)
	}
	if eq, _ := LaTeXEquivalent('ż'); eq != `{\.z}` {
		t.Errorf("ż = %q", eq)
	}
	if _, ok := LaTeXEquivalent('a'); ok {
		t.Error("plain letters must not be escaped")
	}
}
