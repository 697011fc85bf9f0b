package pptxbullet

// ParagraphReport - bullet state of single paragraph
type ParagraphReport struct {
	Index   int
	Level   int
	Style   BulletStyle
	Markers []BulletMarker
	Text    string
}

// Malformed - more than one marker found under the same a:pPr
func (r ParagraphReport) Malformed() bool {
	return len(r.Markers) > 1
}

// Preview - text cut to n runes with "..." suffix
func (r ParagraphReport) Preview(n int) string {
	runes := []rune(r.Text)
	if n <= 0 || len(runes) <= n {
		return r.Text
	}
	return string(runes[:n]) + "..."
}

// Inspect collects bullet state of every paragraph. Read only.
func Inspect(tf *TextFrame) []ParagraphReport {
	paragraphs := tf.Paragraphs()
	reports := make([]ParagraphReport, 0, len(paragraphs))
	for i, p := range paragraphs {
		r := ParagraphReport{
			Index: i,
			Level: p.Level(),
			Style: p.BulletStyle(),
			Text:  p.Text(),
		}
		if pPr := p.Properties(); pPr != nil {
			r.Markers = pPr.Markers()
		}
		reports = append(reports, r)
	}
	return reports
}
