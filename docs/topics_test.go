package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every .md file is listed.
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		topic := strings.TrimSuffix(filepath.Base(file), ".md")
		if topic != "readme" && !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	if !slices.Equal(all, topicsInReadme) {
		t.Errorf("GetAllTopics() = %q, want the readme order %q", all, topicsInReadme)
	}
}

func TestOverlays(t *testing.T) {
	for _, topic := range Overlays() {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("overlay %q: %v", topic, err)
		}
	}
}

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"readme":     "fbitda",
		TextOverlay:  "Briefing",
		VideoOverlay: "Video briefing",
		"roles":      "Teams",
	}
	for topic, want := range tests {
		got, err := Title(topic)
		if err != nil {
			t.Fatalf("Title(%q) error = %v", topic, err)
		}
		if got != want {
			t.Errorf("Title(%q) = %q, want %q", topic, got, want)
		}
	}
	if _, err := Title("nope"); err == nil {
		t.Error("Title(nope) succeeded, want an error")
	}
}

func TestGetTopics(t *testing.T) {
	got, err := GetTopics("roles", "text")
	if err != nil {
		t.Fatalf("GetTopics() error = %v", err)
	}
	if !strings.Contains(got, "# Teams") || !strings.Contains(got, "# Briefing") {
		t.Errorf("GetTopics() is missing a topic:\n%s", got)
	}
	if _, err := GetTopics("roles", "nope"); err == nil {
		t.Error("GetTopics(nope) succeeded, want an error")
	}

	star, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) error = %v", err)
	}
	if strings.Contains(star, "Read a topic with") {
		t.Error("GetTopic(*) includes the readme")
	}
}

// TestHeadings checks that every topic starts with a single title.
func TestHeadings(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			root := goldmark.DefaultParser().Parse(text.NewReader(content))

			var levels []int
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if h, ok := n.(*ast.Heading); ok && entering {
					levels = append(levels, h.Level)
				}
				return ast.WalkContinue, nil
			})
			if len(levels) == 0 || levels[0] != 1 {
				t.Fatalf("%s does not start with a title, heading levels %v", file, levels)
			}
			titles := 0
			for _, l := range levels {
				if l == 1 {
					titles++
				}
			}
			if titles != 1 {
				t.Errorf("%s has %d titles, want 1", file, titles)
			}
		})
	}
}
