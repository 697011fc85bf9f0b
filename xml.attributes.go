package pptxbullet

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// AttrList - Every tag in xml can hold attributes
// <tag attrKey=val1 attrKey2=val2 ... >
type AttrList []xml.Attr

// Get value by attribute name, "lvl" or prefixed "r:embed"
func (attrs AttrList) Get(name string) (string, bool) {
	for _, attr := range attrs {
		if joinName(attr.Name) == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Set - replace value in place or append as last attribute
func (attrs AttrList) Set(name, value string) AttrList {
	for i, attr := range attrs {
		if joinName(attr.Name) == name {
			attrs[i].Value = value
			return attrs
		}
	}
	return append(attrs, xml.Attr{Name: splitTag(name), Value: value})
}

// Remove attribute by name, order of others kept
func (attrs AttrList) Remove(name string) AttrList {
	out := attrs[:0]
	for _, attr := range attrs {
		if joinName(attr.Name) != name {
			out = append(out, attr)
		}
	}
	return out
}

// String - all attributes as string for tag
//
//	attrKey="val1" attrKey2="val2"
func (attrs AttrList) String() string {
	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		parts = append(parts, fmt.Sprintf(`%s="%s"`, joinName(attr.Name), attr.Value))
	}
	return strings.Join(parts, " ")
}
