package docs

import (
	"bufio"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics ensures that the documentation stays in sync with itself:
// every topic listed in readme.md loads, and every topic file is listed.
func TestTopics(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("failed to load readme: %v", err)
	}

	var topicsInReadme []string
	scanner := bufio.NewScanner(strings.NewReader(readme))
	topicRegex := regexp.MustCompile(`^\*\s+([^:*]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}

	if len(topicsInReadme) == 0 {
		t.Fatalf("readme.md lists no topics")
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error: %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

// TestTopicStructure parses each topic with goldmark and checks it opens
// with a single level-1 heading.
func TestTopicStructure(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error: %v", err)
	}
	all = append(all, "readme")

	for _, topic := range all {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("failed to get topic: %v", err)
			}
			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			var h1 int
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
					h1++
				}
				return ast.WalkContinue, nil
			})
			if h1 != 1 {
				t.Errorf("topic %q has %d level-1 headings, want exactly 1", topic, h1)
			}
		})
	}
}

func TestGetTopic_NotFound(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Fatalf("GetTopic(nope) should fail")
	}
}

func TestGetTopic_Star(t *testing.T) {
	doc, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) error: %v", err)
	}
	for _, want := range []string{"# Budgets", "# Goals", "# Trends"} {
		if !strings.Contains(doc, want) {
			t.Errorf("concatenated topics missing %q", want)
		}
	}
}
