package pptxbullet

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Generic element of a DrawingML fragment.
// Prefixes are kept as written (XMLName.Space holds "a", "p", ...),
// namespaces are never resolved.
type xmlNode struct {
	XMLName xml.Name
	Attrs   AttrList
	Content []byte
	Nodes   []*xmlNode

	parent *xmlNode
}

// newXMLNode - "a:buChar" --> <a:buChar>
func newXMLNode(tag string, attrs ...xml.Attr) *xmlNode {
	return &xmlNode{
		XMLName: splitTag(tag),
		Attrs:   attrs,
	}
}

// newChild creates element with same prefix as xnode
// so new children blend in whatever prefix the document uses
func (xnode *xmlNode) newChild(local string, attrs ...xml.Attr) *xmlNode {
	return &xmlNode{
		XMLName: xml.Name{Space: xnode.XMLName.Space, Local: local},
		Attrs:   attrs,
	}
}

func splitTag(tag string) xml.Name {
	if prefix, local, ok := strings.Cut(tag, ":"); ok {
		return xml.Name{Space: prefix, Local: local}
	}
	return xml.Name{Local: tag}
}

// Tag - prefixed name as it appears in document
func (xnode *xmlNode) Tag() string {
	return joinName(xnode.XMLName)
}

// Local - name without prefix
func (xnode *xmlNode) Local() string {
	return xnode.XMLName.Local
}

func joinName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

// Walk down all nodes and do custom stuff with given function
func (xnode *xmlNode) Walk(fn func(*xmlNode)) {
	for _, n := range xnode.Nodes {
		if n == nil {
			continue
		}

		fn(n) // do your custom stuff

		if len(n.Nodes) > 0 {
			//continue only if have deeper nodes
			n.Walk(fn)
		}
	}
}

// Contents - return contents of this and all childs contents merge
func (xnode *xmlNode) Contents() []byte {
	buf := append([]byte(nil), xnode.Content...)
	xnode.Walk(func(n *xmlNode) {
		buf = append(buf, n.Content...)
	})
	return buf
}

// First direct child with given local name
func (xnode *xmlNode) child(local string) *xmlNode {
	for _, n := range xnode.Nodes {
		if n.Local() == local {
			return n
		}
	}
	return nil
}

// All direct children matching any of local names, in document order
func (xnode *xmlNode) children(locals ...string) []*xmlNode {
	var found []*xmlNode
	for _, n := range xnode.Nodes {
		if inSlice(n.Local(), locals) {
			found = append(found, n)
		}
	}
	return found
}

// index of element inside parent.Nodes slice
func (xnode *xmlNode) index() int {
	if xnode.parent != nil {
		for i, n := range xnode.parent.Nodes {
			if xnode == n {
				return i
			}
		}
	}
	return -1
}

// Insert child into specific index, out of range index appends
func (xnode *xmlNode) insertAt(i int, child *xmlNode) {
	child.parent = xnode
	if i < 0 || i >= len(xnode.Nodes) {
		xnode.Nodes = append(xnode.Nodes, child)
		return
	}
	xnode.Nodes = append(xnode.Nodes[:i], append([]*xmlNode{child}, xnode.Nodes[i:]...)...)
}

// Append child as last
func (xnode *xmlNode) add(child *xmlNode) {
	xnode.insertAt(-1, child)
}

// Delete node - detach from parent, siblings keep their order
func (xnode *xmlNode) delete() {
	index := xnode.index()
	if index == -1 {
		return
	}
	nodes := xnode.parent.Nodes
	xnode.parent.Nodes = append(nodes[:index:index], nodes[index+1:]...)
	xnode.parent = nil
}

// Remove all children matching local names, returns removed count
func (xnode *xmlNode) removeChildren(locals ...string) int {
	found := xnode.children(locals...)
	for _, n := range found {
		n.delete()
	}
	return len(found)
}

// Attr value by (optionally prefixed) attribute name
func (xnode *xmlNode) Attr(name string) (string, bool) {
	return xnode.Attrs.Get(name)
}

// SetAttr replaces existing attribute or appends new one
func (xnode *xmlNode) SetAttr(name, value string) {
	xnode.Attrs = xnode.Attrs.Set(name, value)
}

// RemoveAttr drops attribute if present
func (xnode *xmlNode) RemoveAttr(name string) {
	xnode.Attrs = xnode.Attrs.Remove(name)
}

// String get node as string for debugging purposes
// prints useful information
func (xnode *xmlNode) String() string {
	s := fmt.Sprintf("%s: ", xnode.Tag())
	s += fmt.Sprintf("[%s]", xnode.Attrs)
	s += fmt.Sprintf(" == [%s]", xnode.Contents())
	if xnode.parent != nil {
		s += fmt.Sprintf("\tParent: %s", xnode.parent.Tag())
	}
	return s
}

// Decode xml fragment into node tree.
// Raw tokens keep prefixes exactly as written in source.
func parseXMLNode(buf []byte) (root *xmlNode, header []byte, err error) {
	d := xml.NewDecoder(bytes.NewReader(buf))

	var stack []*xmlNode
	for {
		tok, err := d.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		switch t := tok.(type) {
		case xml.ProcInst:
			if t.Target == "xml" && root == nil {
				header = []byte(fmt.Sprintf("<?xml %s?>", bytes.TrimSpace(t.Inst)))
			}
		case xml.StartElement:
			n := &xmlNode{
				XMLName: t.Name,
				Attrs:   append(AttrList(nil), t.Attr...),
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, nil, fmt.Errorf("multiple root elements: %s", joinName(t.Name))
				}
				root = n
			} else {
				stack[len(stack)-1].add(n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, nil, fmt.Errorf("unexpected </%s>", joinName(t.Name))
			}
			top := stack[len(stack)-1]
			if top.XMLName != t.Name {
				return nil, nil, fmt.Errorf("element <%s> closed by </%s>", top.Tag(), joinName(t.Name))
			}
			// whitespace between child elements is only indentation
			if len(top.Nodes) > 0 && len(bytes.TrimSpace(top.Content)) == 0 {
				top.Content = nil
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.Content = append(top.Content, t...)
			}
		}
	}

	if len(stack) > 0 {
		return nil, nil, fmt.Errorf("unclosed element <%s>", stack[len(stack)-1].Tag())
	}
	if root == nil {
		return nil, nil, errors.New("no root element")
	}
	return root, header, nil
}

// Encode node and all childs back to xml
func (xnode *xmlNode) encode(buf *bytes.Buffer) {
	buf.WriteByte('<')
	buf.WriteString(xnode.Tag())
	for _, attr := range xnode.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(joinName(attr.Name))
		buf.WriteString(`="`)
		_ = xml.EscapeText(buf, []byte(attr.Value))
		buf.WriteByte('"')
	}

	if len(xnode.Content) == 0 && len(xnode.Nodes) == 0 {
		buf.WriteString("/>")
		return
	}
	buf.WriteByte('>')
	_ = xml.EscapeText(buf, xnode.Content)
	for _, n := range xnode.Nodes {
		n.encode(buf)
	}
	buf.WriteString("</")
	buf.WriteString(xnode.Tag())
	buf.WriteByte('>')
}
