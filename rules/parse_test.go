package rules

import (
	"bytes"
	"os"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/sebdah/goldie/v2"
)

func TestParseStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domino.rules")
	defer teardown()
	//
	css, err := os.ReadFile("testdata/styles.css")
	if err != nil {
		t.Fatal(err)
	}
	ss, err := Parse(string(css))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err = ss.Encode(&buf, JSON); err != nil {
		t.Fatal(err)
	}
	g := goldie.New(t)
	g.Assert(t, "styles", buf.Bytes())
}

func TestParseSkipsCombinators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domino.rules")
	defer teardown()
	//
	ss, err := Parse(`div p, ul>li, a+b, a~b { -domino-order: 1; }`)
	if err != nil {
		t.Fatal(err)
	}
	if !ss.Empty() {
		t.Errorf("expected selectors with combinators to be skipped, have %v", ss.Rules)
	}
}

func TestParseNegativeOrder(t *testing.T) {
	ss, err := Parse(`.price { -domino-order: -1; }`)
	if err != nil {
		t.Fatal(err)
	}
	if len(ss.Rules.Order) != 1 || ss.Rules.Order[0].Order != -1 {
		t.Errorf("expected one order rule with rank -1, have %v", ss.Rules.Order)
	}
}

func TestParseEmptyMediaIsDropped(t *testing.T) {
	ss, err := Parse(`@media print { p { color: red; } } @media screen { }`)
	if err != nil {
		t.Fatal(err)
	}
	if len(ss.MediaQueries) != 0 {
		t.Errorf("expected media blocks without placement rules to be dropped, have %v", ss.MediaQueries)
	}
}

func TestParseOrderLeadingDigits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domino.rules")
	defer teardown()
	//
	ss, err := Parse(`.a { -domino-order: 2.5; } .b { -domino-order: 10px; } .c { -domino-order: 3; } .d { -domino-order: auto; }`)
	if err != nil {
		t.Fatal(err)
	}
	expected := []OrderRule{{".a", 2}, {".b", 10}, {".c", 3}}
	if len(ss.Rules.Order) != len(expected) {
		t.Fatalf("expected %d order rules, have %v", len(expected), ss.Rules.Order)
	}
	for i, r := range expected {
		if ss.Rules.Order[i] != r {
			t.Errorf("expected order rule %d to be %v, is %v", i, r, ss.Rules.Order[i])
		}
	}
}

func TestParseEmptyContainerIsDropped(t *testing.T) {
	ss, err := Parse(`.a { -domino-container: ""; } .b { -domino-container: main; }`)
	if err != nil {
		t.Fatal(err)
	}
	if len(ss.Rules.Container) != 1 || ss.Rules.Container[0].Selector != ".b" {
		t.Errorf("expected only the rule for .b, have %v", ss.Rules.Container)
	}
}
