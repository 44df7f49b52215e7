package cli

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"svg"}},
		{"png", []string{"png"}},
		{"svg,png,pdf", []string{"svg", "png", "pdf"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := validateFormats([]string{"svg", "png", "pdf"}); err != nil {
		t.Errorf("valid formats rejected: %v", err)
	}
	if err := validateFormats([]string{"svg", "gif"}); err == nil {
		t.Error("gif should be rejected")
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output    string
		formation string
		coverage  string
		want      string
	}{
		{"", "4-3", "cover_2", "4-3_cover_2"},
		{"out.svg", "4-3", "cover_2", "out"},
		{"out.png", "4-3", "cover_2", "out"},
		{"diagrams/play", "4-3", "cover_2", "diagrams/play"},
		{"play.backup", "4-3", "cover_2", "play.backup"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.formation, tt.coverage); got != tt.want {
			t.Errorf("basePath(%q, %q, %q) = %q, want %q",
				tt.output, tt.formation, tt.coverage, got, tt.want)
		}
	}
}

func TestConvertFormatSVGPassthrough(t *testing.T) {
	svg := []byte("<svg></svg>")
	got, err := convertFormat(svg, "svg")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(svg) {
		t.Error("svg conversion must be a passthrough")
	}
}

func TestConvertFormatUnknown(t *testing.T) {
	_, err := convertFormat([]byte("<svg/>"), "gif")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected unknown format error, got %v", err)
	}
}
