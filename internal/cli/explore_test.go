package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fieldgeneral/playcall/pkg/playbook"
)

func testExploreModel(t *testing.T) ExploreModel {
	t.Helper()
	lib, err := playbook.Default()
	if err != nil {
		t.Fatal(err)
	}
	return NewExploreModel(lib)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestExploreInitialSelection(t *testing.T) {
	m := testExploreModel(t)
	formation, coverage, blitz := m.Selection()

	// First key of each sorted list.
	if formation != "3-4" {
		t.Errorf("formation = %q, want 3-4", formation)
	}
	if coverage != "cover_0" {
		t.Errorf("coverage = %q, want cover_0", coverage)
	}
	if blitz != "base" {
		t.Errorf("blitz = %q, want base", blitz)
	}
}

func TestExploreNavigation(t *testing.T) {
	m := testExploreModel(t)

	// Move down in the formation column, then switch to coverage and
	// move down twice.
	next, _ := m.Update(keyMsg("j"))
	m = next.(ExploreModel)
	next, _ = m.Update(keyMsg("l"))
	m = next.(ExploreModel)
	next, _ = m.Update(keyMsg("j"))
	m = next.(ExploreModel)
	next, _ = m.Update(keyMsg("j"))
	m = next.(ExploreModel)

	formation, coverage, _ := m.Selection()
	if formation != "4-3" {
		t.Errorf("formation = %q, want 4-3", formation)
	}
	if coverage != "cover_1_robber" {
		t.Errorf("coverage = %q, want cover_1_robber", coverage)
	}
}

func TestExploreCursorClamped(t *testing.T) {
	m := testExploreModel(t)

	// Moving up at the top stays at the top.
	next, _ := m.Update(keyMsg("k"))
	m = next.(ExploreModel)
	if m.cursors[columnFormation] != 0 {
		t.Error("cursor should clamp at 0")
	}

	// Moving down past the end stays at the last entry.
	for range 20 {
		next, _ = m.Update(keyMsg("j"))
		m = next.(ExploreModel)
	}
	if m.cursors[columnFormation] != len(m.formations)-1 {
		t.Errorf("cursor = %d, want %d", m.cursors[columnFormation], len(m.formations)-1)
	}
}

func TestExploreColumnClamped(t *testing.T) {
	m := testExploreModel(t)

	next, _ := m.Update(keyMsg("h"))
	m = next.(ExploreModel)
	if m.column != columnFormation {
		t.Error("column should clamp at formation")
	}

	for range 5 {
		next, _ = m.Update(keyMsg("l"))
		m = next.(ExploreModel)
	}
	if m.column != columnBlitz {
		t.Error("column should clamp at blitz")
	}
}

func TestExploreQuit(t *testing.T) {
	m := testExploreModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("expected QuitMsg, got %T", msg)
	}
}

func TestExploreViewShowsAnswers(t *testing.T) {
	m := testExploreModel(t)
	view := m.View()

	if !strings.Contains(view, "Playcall Explorer") {
		t.Error("view missing title")
	}
	// cover_0 has pass answers in the reference data.
	if !strings.Contains(view, "Pass") {
		t.Error("view missing pass answers for cover_0")
	}
}
