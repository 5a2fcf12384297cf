package glossa

import "testing"

func TestCaseSuffixes(t *testing.T) {
	for _, input := range []struct {
		word string
		c    Case
		stem string
	}{
		{"lango", Object, "lang"},
		{"prosactu", Verb, "prosact"},
		{"komona", Adjective, "komon"},
		{"gu*de", Adverb, "gu*d"},
		{"mii", Possessive, "mi"},
	} {
		c, ok := CaseOf(input.word)
		if !ok || c != input.c {
			t.Errorf("expected %q to be of case %v, is %v", input.word, input.c, c)
		}
		if stem, ok := c.Strip(input.word); !ok || stem != input.stem {
			t.Errorf("expected stem of %q to be %q, is %q", input.word, input.stem, stem)
		}
	}
	if _, ok := CaseOf("ludik"); ok {
		t.Errorf("expected 'ludik' to carry no case suffix")
	}
	if stem, ok := Verb.Strip("lango"); ok || stem != "lango" {
		t.Errorf("expected Strip to leave foreign suffix alone")
	}
}

func TestCaseSwap(t *testing.T) {
	if w := Adverb.Swap("gu*de", Object); w != "gu*do" {
		t.Errorf("expected gu*do, have %q", w)
	}
	if w := Adverb.Swap("lango", Object); w != "lango" {
		t.Errorf("expected lango to be unchanged, have %q", w)
	}
	if Possessive.String() != "possessive" {
		t.Errorf("unexpected case name %q", Possessive.String())
	}
}

func TestSpan(t *testing.T) {
	var null Span
	s := Span{4, 12}
	if s.Len() != 8 || s.From() != 4 || s.To() != 12 {
		t.Errorf("unexpected span %v", s)
	}
	if !null.IsNull() || null.Extend(s) != s {
		t.Errorf("expected null span to extend to %v", s)
	}
	if x := s.Extend(Span{10, 20}); x != (Span{4, 20}) {
		t.Errorf("expected (4…20), have %v", x)
	}
	if s.String() != "(4…12)" {
		t.Errorf("unexpected span rendering %s", s)
	}
}
