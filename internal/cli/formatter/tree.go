package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in the record tree display.
type TreeItem struct {
	Title    string
	Seq      int // scope-local sequence number; 0 means don't display
	Level    int
	IsLast   bool
	Badge    string // styled badge rendered right-aligned, "" for none
	Selected bool
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders record tree items as an indented tree using
// box-drawing characters for connectors. The selected item is rendered
// bold with a ▶ marker, and badges are right-aligned past the widest line.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			for i := 1; i < item.Level; i++ {
				prefix += treePipe
			}
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := item.Title
		if item.Seq > 0 {
			title = StyleDim.Render(fmt.Sprintf("#%d ", item.Seq)) + title
		}

		marker := "  "
		if item.Selected {
			marker = StyleHeader.Render("▶ ")
			title = StyleBold.Render(item.Title)
			if item.Seq > 0 {
				title = StyleDim.Render(fmt.Sprintf("#%d ", item.Seq)) + StyleBold.Render(item.Title)
			}
		}

		content := prefix + marker + title
		lines[idx].content = content
		lines[idx].badge = item.Badge

		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge != "" {
			pad := maxContentWidth - lipgloss.Width(li.content)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
		} else {
			b.WriteString(li.content + "\n")
		}
	}

	return b.String()
}
