package pptxbullet

import (
	"encoding/xml"
	"fmt"
)

// MarkerKind - which bullet marker element (if any) sits under a:pPr
type MarkerKind int8

// Marker kinds. Absent means no marker element at all.
const (
	MarkerAbsent MarkerKind = iota
	MarkerNone
	MarkerAutoNumber
	MarkerCharacter
)

// Element local names of the marker kinds
const (
	tagBuNone    = "buNone"
	tagBuAutoNum = "buAutoNum"
	tagBuChar    = "buChar"
)

var markerTags = []string{tagBuNone, tagBuAutoNum, tagBuChar}

// Defaults written by the bullet style setter
const (
	DefaultBulletChar   = "\u2022"
	DefaultNumberScheme = "arabicPeriod"
)

func (k MarkerKind) String() string {
	switch k {
	case MarkerAbsent:
		return "absent"
	case MarkerNone:
		return tagBuNone
	case MarkerAutoNumber:
		return tagBuAutoNum
	case MarkerCharacter:
		return tagBuChar
	}
	return fmt.Sprintf("MarkerKind(%d)", int8(k))
}

// BulletMarker - exactly one variant is meaningful at a time:
// Char for MarkerCharacter, Scheme for MarkerAutoNumber.
type BulletMarker struct {
	Kind   MarkerKind
	Char   string
	Scheme string

	node *xmlNode
}

// CharacterMarker - <a:buChar char="..."/>
func CharacterMarker(char string) BulletMarker {
	if char == "" {
		char = DefaultBulletChar
	}
	return BulletMarker{Kind: MarkerCharacter, Char: char}
}

// AutoNumberMarker - <a:buAutoNum type="..."/>
func AutoNumberMarker(scheme string) BulletMarker {
	if scheme == "" {
		scheme = DefaultNumberScheme
	}
	return BulletMarker{Kind: MarkerAutoNumber, Scheme: scheme}
}

// NoneMarker - <a:buNone/>, explicitly no bullet
func NoneMarker() BulletMarker {
	return BulletMarker{Kind: MarkerNone}
}

// Read marker from element, false if element is not a marker
func markerFromNode(n *xmlNode) (BulletMarker, bool) {
	var m BulletMarker
	switch n.Local() {
	case tagBuNone:
		m = NoneMarker()
	case tagBuChar:
		char, _ := n.Attr("char")
		m = BulletMarker{Kind: MarkerCharacter, Char: char}
	case tagBuAutoNum:
		scheme, _ := n.Attr("type")
		m = BulletMarker{Kind: MarkerAutoNumber, Scheme: scheme}
	default:
		return BulletMarker{}, false
	}
	m.node = n
	return m, true
}

// Style - semantic value of marker
func (m BulletMarker) Style() BulletStyle {
	switch m.Kind {
	case MarkerCharacter:
		return BulletStyleBullet
	case MarkerAutoNumber:
		return BulletStyleNumber
	case MarkerNone, MarkerAbsent:
		return BulletStyleNone
	}
	return BulletStyleNone
}

// Build element for marker under given parent prefix.
// Absent has no element.
func (m BulletMarker) element(parent *xmlNode) *xmlNode {
	switch m.Kind {
	case MarkerCharacter:
		return parent.newChild(tagBuChar, xml.Attr{Name: xml.Name{Local: "char"}, Value: m.Char})
	case MarkerAutoNumber:
		return parent.newChild(tagBuAutoNum, xml.Attr{Name: xml.Name{Local: "type"}, Value: m.Scheme})
	case MarkerNone:
		return parent.newChild(tagBuNone)
	case MarkerAbsent:
		return nil
	}
	return nil
}

func (m BulletMarker) String() string {
	switch m.Kind {
	case MarkerCharacter:
		return fmt.Sprintf("%s(char=%q)", m.Kind, m.Char)
	case MarkerAutoNumber:
		return fmt.Sprintf("%s(type=%q)", m.Kind, m.Scheme)
	}
	return m.Kind.String()
}
