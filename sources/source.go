package sources

import "strings"

// Source is one named unit of program text.
type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Line returns the text of the 1-based line n, without the trailing newline.
func (s *Source) Line(n int) (string, bool) {
	if s == nil || n < 1 || n > len(s.Lines) {
		return "", false
	}
	return strings.TrimSuffix(s.Lines[n-1], "\r"), true
}
