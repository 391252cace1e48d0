package cmd

import (
	"strings"
	"testing"
)

func TestTopicCmd_Document(t *testing.T) {
	tests := []struct {
		name   string
		cmd    topicCmd
		topics []string
		want   []string // headings expected in order
	}{
		{"readme", topicCmd{}, nil, []string{"# fbitda"}},
		{"topics", topicCmd{}, []string{"roles", "valuation"}, []string{"# Teams", "# Valuation"}},
		{"overlays", topicCmd{overlays: true}, nil, []string{"# Briefing", "# Video briefing"}},
		{"list", topicCmd{list: true}, nil, []string{"# Topics", "* `text`: Briefing (overlay)", "* `video`: Video briefing (overlay)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cmd.document(tt.topics)
			if err != nil {
				t.Fatalf("document() error = %v", err)
			}
			rest := got
			for _, w := range tt.want {
				i := strings.Index(rest, w)
				if i < 0 {
					t.Fatalf("document() is missing %q in order:\n%s", w, got)
				}
				rest = rest[i+len(w):]
			}
		})
	}

	if _, err := (&topicCmd{}).document([]string{"nope"}); err == nil {
		t.Error("document(nope) succeeded, want an error")
	}
}

func TestTopicList_MarksOverlaysOnly(t *testing.T) {
	got, err := topicList()
	if err != nil {
		t.Fatalf("topicList() error = %v", err)
	}
	if n := strings.Count(got, "(overlay)"); n != 2 {
		t.Errorf("topicList() marks %d overlays, want 2:\n%s", n, got)
	}
	if strings.Contains(got, "`readme`") {
		t.Errorf("topicList() lists the readme:\n%s", got)
	}
}
