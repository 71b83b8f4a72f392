package notes

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type sectionHeading struct {
	line  int // 0-based line number of the heading
	title string
}

// AppendToSection appends entry under the `## <section>` heading of the note
// at path, creating the year directory and the file when absent. It returns
// the 1-based line number the entry landed on.
//
// A brand-new file gets no skeleton here, just the entry itself; Store.Ensure
// is what seeds the full section layout for editor use.
func AppendToSection(path, section, entry string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("error reading %s: %v", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("error creating directory: %v", err)
	}

	trimmed := strings.TrimRight(string(content), "\n")
	if trimmed == "" {
		if err := os.WriteFile(path, []byte(entry+"\n"), 0644); err != nil {
			return 0, fmt.Errorf("error writing %s: %v", path, err)
		}
		return 1, nil
	}

	lines := strings.Split(trimmed, "\n")
	headings := sectionHeadings([]byte(trimmed))

	sectionAt := -1
	for _, h := range headings {
		if h.title == section {
			sectionAt = h.line
			break
		}
	}

	var entryAt int
	if sectionAt == -1 {
		lines = append(lines, "", "## "+section, entry)
		entryAt = len(lines) - 1
	} else {
		// Section runs until the next level-2 heading (or EOF). The entry
		// goes after the section's last non-blank line.
		boundary := len(lines)
		for _, h := range headings {
			if h.line > sectionAt {
				boundary = h.line
				break
			}
		}
		entryAt = sectionAt + 1
		for i := boundary - 1; i > sectionAt; i-- {
			if strings.TrimSpace(lines[i]) != "" {
				entryAt = i + 1
				break
			}
		}
		lines = append(lines[:entryAt], append([]string{entry}, lines[entryAt:]...)...)
	}

	out := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return 0, fmt.Errorf("error writing %s: %v", path, err)
	}
	return entryAt + 1, nil
}

// sectionHeadings walks the markdown AST and returns every level-2 heading
// with the 0-based line it starts on. Frontmatter is stripped before parsing
// so its `---` fences cannot masquerade as setext headings.
func sectionHeadings(src []byte) []sectionHeading {
	body := src
	offset := 0
	if _, fmLines := frontmatterBlock(src); fmLines > 0 {
		parts := bytes.SplitN(src, []byte("\n"), fmLines+1)
		if len(parts) > fmLines {
			body = parts[fmLines]
			offset = fmLines
		} else {
			body = nil
			offset = fmLines
		}
	}
	if len(body) == 0 {
		return nil
	}

	parser := goldmark.DefaultParser()
	doc := parser.Parse(text.NewReader(body))

	var headings []sectionHeading
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 2 || heading.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}
		seg := heading.Lines().At(0)
		headings = append(headings, sectionHeading{
			line:  offset + bytes.Count(body[:seg.Start], []byte("\n")),
			title: string(heading.Text(body)),
		})
		return ast.WalkContinue, nil
	})
	return headings
}
