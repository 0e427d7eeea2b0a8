package markdown

import (
	"fmt"
	"strings"

	"github.com/rogersnm/shotdoc/internal/model"
)

const (
	pagesPreamble = "本文档由 web-document-creator 自动生成。"
	stepsPreamble = "本文档由 web-operation-document 技能自动生成。"
)

// Pages renders the webdoc README for project. Pages appear in stored order.
func Pages(project string, pages *model.PageSet) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s 自动化文档\n\n", project)
	sb.WriteString(pagesPreamble + "\n\n")

	if pages == nil {
		return sb.String()
	}
	for _, e := range pages.Entries() {
		p := e.Page
		fmt.Fprintf(&sb, "## %s\n\n", p.Title)
		fmt.Fprintf(&sb, "**描述**: %s\n\n", p.Description)
		fmt.Fprintf(&sb, "![%s](%s)\n\n", p.Title, p.Screenshot)

		if len(p.Links) > 0 {
			sb.WriteString("### 可交互元素\n\n")
			for _, l := range p.Links {
				fmt.Fprintf(&sb, "- **%s**: %s\n", l.Text, l.Label())
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// StepsTitle is the document title used when none is given.
func StepsTitle(project string) string {
	return project + " 操作流程文档"
}

// Steps renders the opdoc operations document. Each step gets a numbered
// heading, its caption and its annotated screenshot, followed by a rule.
func Steps(title string, steps []model.Step) string {
	lines := []string{
		"# " + title + "\n",
		stepsPreamble + "\n",
	}
	for i, s := range steps {
		n := i + 1
		lines = append(lines,
			fmt.Sprintf("## 步骤 %d", n),
			s.Caption+"\n",
			fmt.Sprintf("![步骤 %d](%s)\n", n, s.RelativeProcessed),
			"---",
		)
	}
	return strings.Join(lines, "\n")
}
