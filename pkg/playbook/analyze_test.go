package playbook

import (
	"reflect"
	"testing"
)

func testLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := Default()
	if err != nil {
		t.Fatalf("Default error: %v", err)
	}
	return lib
}

func TestAnalyzeBaseLook(t *testing.T) {
	lib := testLibrary(t)

	a := lib.Analyze("4-3", "cover_2", BaseBlitz)

	if a.Defense.Formation != "4-3" || a.Defense.Coverage != "cover_2" {
		t.Errorf("defense echo = %+v", a.Defense)
	}
	if a.Defense.CoverageInfo.Name == "" {
		t.Error("coverage info should resolve for a known coverage")
	}

	wantPass := lib.Beaters["cover_2"].BestPass
	if len(a.PassConcepts) != len(wantPass) {
		t.Fatalf("pass answers = %d, want %d", len(a.PassConcepts), len(wantPass))
	}
	for i, ans := range a.PassConcepts {
		if ans.Key != wantPass[i] {
			t.Errorf("pass answer[%d] = %q, want %q (order must be preserved)", i, ans.Key, wantPass[i])
		}
		if ans.WhyItWorks == "" {
			t.Errorf("pass answer %q has empty why_it_works", ans.Key)
		}
	}
	if a.Priority != lib.Beaters["cover_2"].Priority {
		t.Errorf("priority = %q", a.Priority)
	}
}

func TestAnalyzeMergesBlitzBeaters(t *testing.T) {
	lib := testLibrary(t)

	base := lib.Analyze("nickel", "cover_3", BaseBlitz)
	blitzed := lib.Analyze("nickel", "cover_3", "fire_zone")

	if len(blitzed.PassConcepts) < len(base.PassConcepts) {
		t.Error("blitz merge should never shrink the answer list below the coverage's")
	}
	if len(blitzed.PassConcepts) > maxPassAnswers {
		t.Errorf("pass answers = %d, exceeds cap %d", len(blitzed.PassConcepts), maxPassAnswers)
	}
	if len(blitzed.RunConcepts) > maxRunAnswers {
		t.Errorf("run answers = %d, exceeds cap %d", len(blitzed.RunConcepts), maxRunAnswers)
	}

	// Coverage answers come first, in their original order.
	for i, ans := range base.PassConcepts {
		if i >= len(blitzed.PassConcepts) {
			break
		}
		if blitzed.PassConcepts[i].Key != ans.Key {
			t.Errorf("merged answer[%d] = %q, want coverage answer %q first", i, blitzed.PassConcepts[i].Key, ans.Key)
		}
	}

	// Blitz-specific advice overrides the coverage's.
	if blitzed.Priority != lib.Beaters["fire_zone"].Priority {
		t.Errorf("priority = %q, want the blitz priority", blitzed.Priority)
	}

	// No duplicates after the merge.
	seen := map[string]bool{}
	for _, ans := range blitzed.PassConcepts {
		if seen[ans.Key] {
			t.Errorf("duplicate pass answer %q", ans.Key)
		}
		seen[ans.Key] = true
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	lib := testLibrary(t)

	a := lib.Analyze("dime", "cover_2", "double_a_gap")
	b := lib.Analyze("dime", "cover_2", "double_a_gap")
	if !reflect.DeepEqual(a, b) {
		t.Error("Analyze must be deterministic")
	}
}

func TestAnalyzeUnknownKeysAreSparse(t *testing.T) {
	lib := testLibrary(t)

	a := lib.Analyze("46-bear", "quarters_match", "house_call")

	if len(a.PassConcepts) != 0 || len(a.RunConcepts) != 0 {
		t.Error("unknown coverage should yield no answers")
	}
	if a.Defense.Formation != "46-bear" {
		t.Error("unknown keys are still echoed back")
	}
	if a.Defense.CoverageInfo.Name != "" {
		t.Error("unknown coverage resolves to a zero record")
	}
}

func TestWhyItWorksFallbacks(t *testing.T) {
	lib := testLibrary(t)

	a := lib.Analyze("4-3", "cover_6", BaseBlitz)
	for _, ans := range a.PassConcepts {
		if ans.WhyItWorks == "" {
			t.Errorf("pass answer %q missing why_it_works", ans.Key)
		}
	}

	got := firstReason(map[string]string{"nickel": "box count"}, genericRunReason, "cover_9", "nickel")
	if got != "box count" {
		t.Errorf("firstReason = %q, want formation fallback", got)
	}
	got = firstReason(nil, genericRunReason, "cover_9")
	if got != genericRunReason {
		t.Errorf("firstReason = %q, want generic fallback", got)
	}
}

func TestMergeBeatersCaps(t *testing.T) {
	coverage := Beater{
		BestPass: []string{"a", "b", "c", "d"},
		BestRun:  []string{"r1", "r2", "r3"},
	}
	blitz := Beater{
		BestPass: []string{"c", "e", "f"},
		BestRun:  []string{"r2", "r4", "r5"},
	}

	merged := mergeBeaters(coverage, blitz)
	if want := []string{"a", "b", "c", "d", "e"}; !reflect.DeepEqual(merged.BestPass, want) {
		t.Errorf("BestPass = %v, want %v", merged.BestPass, want)
	}
	if want := []string{"r1", "r2", "r3", "r4"}; !reflect.DeepEqual(merged.BestRun, want) {
		t.Errorf("BestRun = %v, want %v", merged.BestRun, want)
	}
}
