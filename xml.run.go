package pptxbullet

import "strings"

// <a:r><a:t>text</a:t></a:r>
func newRun(paragraph *xmlNode, text string) *xmlNode {
	r := paragraph.newChild("r")
	t := r.newChild("t")
	t.Content = []byte(text)
	r.add(t)
	return r
}

// Text of a run (or field) - contents of its <a:t> nodes only,
// run properties never hold text
func runText(r *xmlNode) string {
	var sb strings.Builder
	for _, t := range r.children("t") {
		sb.Write(t.Content)
	}
	return sb.String()
}
