package search

// Match is one todo-marker hit inside a note file.
type Match struct {
	Path string // absolute path to the file
	Line int    // 1-based line number
	Text string // full line content
}

// Searcher finds todo-marker lines under a directory tree. The ripgrep
// implementation accelerates large stores; the walking implementation is the
// in-process fallback, so correctness never depends on an external binary.
type Searcher interface {
	Search(root string) ([]Match, error)
}

// Pattern is the marker regexp handed to external search tools. It must stay
// in sync with the prefixes data.ParseLine accepts.
const Pattern = `^- \[( |x)\] `

// ForConfig picks a searcher by configured name: "builtin" forces the
// walking scanner, anything else uses ripgrep when it is installed.
func ForConfig(name string) Searcher {
	if name == "builtin" {
		return Walk{}
	}
	rg := NewRipgrep()
	if rg.Available() {
		return rg
	}
	return Walk{}
}
