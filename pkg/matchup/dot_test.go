package matchup

import (
	"strings"
	"testing"

	"github.com/fieldgeneral/playcall/pkg/playbook"
)

func TestToDOT(t *testing.T) {
	lib, err := playbook.Default()
	if err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(lib, Options{})

	if !strings.HasPrefix(dot, "digraph matchups {") {
		t.Error("DOT should open a digraph")
	}
	if !strings.Contains(dot, `"mesh" -> "cover_0";`) {
		t.Error("mesh should point at cover_0")
	}
	if strings.Contains(dot, `"base"`) {
		t.Error("the base (no blitz) sentinel must not appear in the graph")
	}
	// Pass-only by default: no run concept nodes.
	if strings.Contains(dot, `"inside_zone"`) {
		t.Error("run concepts should be excluded without RunGame")
	}
}

func TestToDOTWithRunGame(t *testing.T) {
	lib, err := playbook.Default()
	if err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(lib, Options{RunGame: true})
	if !strings.Contains(dot, `"inside_zone"`) {
		t.Error("run concepts should appear with RunGame")
	}
	if !strings.Contains(dot, `"draw" -> "cover_0";`) {
		t.Error("draw should point at cover_0 with RunGame")
	}
}

func TestToDOTDeterministic(t *testing.T) {
	lib, err := playbook.Default()
	if err != nil {
		t.Fatal(err)
	}

	a := ToDOT(lib, Options{RunGame: true})
	b := ToDOT(lib, Options{RunGame: true})
	if a != b {
		t.Error("ToDOT must be deterministic")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?><svg width="8pt" height="6pt" viewBox="0.00 0.00 100.50 60.25" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 100.50 60.25"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="101"`) && !strings.Contains(out, `width="100"`) {
		t.Errorf("width not rewritten from viewBox: %s", out)
	}

	// Documents without a viewBox pass through untouched.
	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Error("svg without viewBox should be unchanged")
	}
}
