package pptxbullet

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// DrawingML namespaces declared on standalone fragments
const (
	nsDrawingML     = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPresentation  = "http://schemas.openxmlformats.org/presentationml/2006/main"
	defaultNSPrefix = "a"
)

// Paragraph - one <a:p> of a text frame.
// Holds a pointer into the owning tree, all changes are made in place.
type Paragraph struct {
	node *xmlNode
}

// ParagraphProperties - <a:pPr> container of a paragraph
type ParagraphProperties struct {
	node *xmlNode
}

// NewParagraph - detached empty <a:p/>
func NewParagraph() *Paragraph {
	return &Paragraph{node: newXMLNode(defaultNSPrefix + ":p")}
}

// ParseParagraph reads standalone <a:p> fragment
func ParseParagraph(buf []byte) (*Paragraph, error) {
	root, _, err := parseXMLNode(buf)
	if err != nil {
		return nil, &ParseError{Source: "paragraph", Cause: err}
	}
	if root.Local() != "p" {
		return nil, &ParseError{Source: "paragraph", Cause: fmt.Errorf("root element is <%s>, expected <a:p>", root.Tag())}
	}
	return &Paragraph{node: root}, nil
}

// Properties - existing <a:pPr> or nil. Never creates one.
func (p *Paragraph) Properties() *ParagraphProperties {
	if n := p.node.child("pPr"); n != nil {
		return &ParagraphProperties{node: n}
	}
	return nil
}

// PropertiesOrCreate returns existing <a:pPr> or attaches an empty one
// as leading child of the paragraph.
func (p *Paragraph) PropertiesOrCreate() *ParagraphProperties {
	if pPr := p.Properties(); pPr != nil {
		return pPr
	}
	n := p.node.newChild("pPr")
	paragraphOrder.insert(p.node, n)
	tracef("pPr: created on paragraph")
	return &ParagraphProperties{node: n}
}

// Text - plain text of all runs and fields, <a:br/> as line feed
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, n := range p.node.Nodes {
		switch n.Local() {
		case "r", "fld":
			sb.WriteString(runText(n))
		case "br":
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// SetText replaces runs, breaks and fields with new content.
// Line feeds become <a:br/>. Properties and end paragraph run properties stay.
func (p *Paragraph) SetText(text string) {
	p.node.removeChildren("r", "br", "fld")

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			paragraphOrder.insert(p.node, p.node.newChild("br"))
		}
		if line == "" {
			continue
		}
		paragraphOrder.insert(p.node, newRun(p.node, line))
	}
}

// clear drops run content, keeps properties
func (p *Paragraph) clear() {
	p.node.removeChildren("r", "br", "fld")
}

// Level - indentation level from lvl attribute of <a:pPr>, 0 when unset
func (p *Paragraph) Level() int {
	pPr := p.Properties()
	if pPr == nil {
		return 0
	}
	v, ok := pPr.node.Attr("lvl")
	if !ok {
		return 0
	}
	lvl, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return lvl
}

// SetLevel writes lvl as is. Level 0 removes attribute (schema default).
func (p *Paragraph) SetLevel(lvl int) {
	pPr := p.PropertiesOrCreate()
	if lvl == 0 {
		pPr.node.RemoveAttr("lvl")
		return
	}
	pPr.node.SetAttr("lvl", strconv.Itoa(lvl))
}

// Bytes - paragraph element as xml
func (p *Paragraph) Bytes() []byte {
	buf := new(bytes.Buffer)
	p.node.encode(buf)
	return buf.Bytes()
}

// Marker - first marker element in document order, MarkerAbsent when none.
// Malformed containers with several markers resolve to the first one.
func (pPr *ParagraphProperties) Marker() BulletMarker {
	for _, n := range pPr.node.Nodes {
		if m, ok := markerFromNode(n); ok {
			return m
		}
	}
	return BulletMarker{Kind: MarkerAbsent}
}

// Markers - every marker element, more than one only in malformed input
func (pPr *ParagraphProperties) Markers() []BulletMarker {
	var markers []BulletMarker
	for _, n := range pPr.node.Nodes {
		if m, ok := markerFromNode(n); ok {
			markers = append(markers, m)
		}
	}
	return markers
}

// Remove all marker elements of any kind, returns how many were removed
func (pPr *ParagraphProperties) removeMarkers() int {
	removed := pPr.node.removeChildren(markerTags...)
	if removed > 1 {
		warnf("pPr: removed %d conflicting bullet markers", removed)
	}
	return removed
}

// Insert marker element in its schema slot
func (pPr *ParagraphProperties) insertMarker(m BulletMarker) {
	n := m.element(pPr.node)
	if n == nil {
		return
	}
	paragraphPropertiesOrder.insert(pPr.node, n)
	tracef("pPr: inserted %s at %d -- %s", m, n.index(), n)
}

// Len - count of child elements
func (pPr *ParagraphProperties) Len() int {
	return len(pPr.node.Nodes)
}

// Tags - prefixed names of child elements in document order
func (pPr *ParagraphProperties) Tags() []string {
	tags := make([]string, 0, len(pPr.node.Nodes))
	for _, n := range pPr.node.Nodes {
		tags = append(tags, n.Tag())
	}
	return tags
}
