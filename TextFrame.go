package pptxbullet

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// TextFrame - text body of a shape (<p:txBody> or <a:txBody>)
// holding ordered paragraphs.
type TextFrame struct {
	path   string
	header []byte // <?xml ..?> if source had one
	root   *xmlNode
}

// NewTextFrame - body as a fresh text box gets it: properties, empty list
// style and one empty paragraph
func NewTextFrame() *TextFrame {
	root := newXMLNode("p:txBody",
		xml.Attr{Name: xml.Name{Space: "xmlns", Local: "a"}, Value: nsDrawingML},
		xml.Attr{Name: xml.Name{Space: "xmlns", Local: "p"}, Value: nsPresentation},
	)
	root.add(newXMLNode(defaultNSPrefix+":bodyPr", xml.Attr{Name: xml.Name{Local: "wrap"}, Value: "none"}))
	root.add(newXMLNode(defaultNSPrefix + ":lstStyle"))
	root.add(newXMLNode(defaultNSPrefix + ":p"))
	return &TextFrame{root: root}
}

// OpenTextFrame reads text body fragment from file
func OpenTextFrame(path string) (*TextFrame, error) {
	f, err := os.Open(path) // #nosec G304 - path given by user
	if err != nil {
		return nil, err
	}

	tf, err := ReadTextFrame(f)
	if err != nil {
		if perr, ok := err.(*ParseError); ok {
			perr.Source = path
		}
		return nil, err
	}
	tf.path = path
	return tf, nil
}

// ReadTextFrame reads whole reader and closes it
func ReadTextFrame(rdr io.ReadCloser) (*TextFrame, error) {
	buf := readerBytes(rdr)
	if len(buf) == 0 {
		return nil, &ParseError{Source: "text frame", Cause: io.ErrUnexpectedEOF}
	}
	return ParseTextFrame(buf)
}

// ParseTextFrame decodes <p:txBody>/<a:txBody> fragment
func ParseTextFrame(buf []byte) (*TextFrame, error) {
	root, header, err := parseXMLNode(buf)
	if err != nil {
		errorf("ParseTextFrame: %v", err)
		return nil, &ParseError{Source: "text frame", Cause: err}
	}
	if root.Local() != "txBody" {
		return nil, &ParseError{
			Source: "text frame",
			Cause:  fmt.Errorf("root element is <%s>, expected <p:txBody> or <a:txBody>", root.Tag()),
		}
	}
	return &TextFrame{root: root, header: header}, nil
}

// Path of source file, empty when not opened from disk
func (tf *TextFrame) Path() string {
	return tf.path
}

// Paragraphs in document order
func (tf *TextFrame) Paragraphs() []*Paragraph {
	nodes := tf.root.children("p")
	paragraphs := make([]*Paragraph, len(nodes))
	for i, n := range nodes {
		paragraphs[i] = &Paragraph{node: n}
	}
	return paragraphs
}

// Paragraph by index
func (tf *TextFrame) Paragraph(i int) (*Paragraph, error) {
	paragraphs := tf.Paragraphs()
	if i < 0 || i >= len(paragraphs) {
		return nil, &InvalidArgumentError{
			Param: "paragraph index",
			Value: fmt.Sprintf("%d of %d paragraphs", i, len(paragraphs)),
		}
	}
	return paragraphs[i], nil
}

// AddParagraph appends new empty paragraph after the last one
func (tf *TextFrame) AddParagraph() *Paragraph {
	prefix := defaultNSPrefix
	if last := tf.lastParagraph(); last != nil {
		prefix = last.XMLName.Space
	} else if bodyPr := tf.root.child("bodyPr"); bodyPr != nil {
		prefix = bodyPr.XMLName.Space
	}

	n := newXMLNode(joinName(xml.Name{Space: prefix, Local: "p"}))
	textBodyOrder.insert(tf.root, n)
	return &Paragraph{node: n}
}

func (tf *TextFrame) lastParagraph() *xmlNode {
	nodes := tf.root.children("p")
	if len(nodes) == 0 {
		return nil
	}
	return nodes[len(nodes)-1]
}

// Clear leaves single empty paragraph, first paragraph properties kept
func (tf *TextFrame) Clear() {
	nodes := tf.root.children("p")
	if len(nodes) == 0 {
		tf.AddParagraph()
		return
	}
	for _, n := range nodes[1:] {
		n.delete()
	}
	(&Paragraph{node: nodes[0]}).clear()
}

// Text - paragraphs text joined by line feed
func (tf *TextFrame) Text() string {
	paragraphs := tf.Paragraphs()
	lines := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		lines[i] = p.Text()
	}
	return strings.Join(lines, "\n")
}

// Bytes - whole text body as xml
func (tf *TextFrame) Bytes() []byte {
	return nodeToXMLBytes(tf.root, tf.header)
}

// Export writes xml to w
func (tf *TextFrame) Export(w io.Writer) error {
	_, err := w.Write(tf.Bytes())
	return err
}

// ExportFile - save xml to path
func (tf *TextFrame) ExportFile(path string) error {
	return os.WriteFile(path, tf.Bytes(), 0o644) // #nosec G306 - document output
}
