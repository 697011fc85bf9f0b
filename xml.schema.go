package pptxbullet

// schemaOrder ranks sibling element kinds (by local name) in the order
// the DrawingML schema requires them inside one parent.
// Kinds sharing a rank belong to one choice group.
type schemaOrder map[string]int

// CT_TextParagraphProperties sequence (a:pPr children)
var paragraphPropertiesOrder = schemaOrder{
	"lnSpc":     1,
	"spcBef":    2,
	"spcAft":    3,
	"buClrTx":   4,
	"buClr":     4,
	"buSzTx":    5,
	"buSzPct":   5,
	"buSzPts":   5,
	"buFontTx":  6,
	"buFont":    6,
	"buNone":    7, // bullet marker slot
	"buAutoNum": 7,
	"buChar":    7,
	"buBlip":    7,
	"tabLst":    8,
	"defRPr":    9,
	"extLst":    10,
}

// CT_TextParagraph (a:p children)
var paragraphOrder = schemaOrder{
	"pPr":        1,
	"r":          2,
	"br":         2,
	"fld":        2,
	"endParaRPr": 3,
}

// CT_TextBody (a:txBody / p:txBody children)
var textBodyOrder = schemaOrder{
	"bodyPr":   1,
	"lstStyle": 2,
	"p":        3,
}

func (order schemaOrder) rank(local string) (int, bool) {
	r, ok := order[local]
	return r, ok
}

// Position where element of given kind must go:
// before first existing child ranked after it, otherwise at the end.
// Children of unknown kind are never successors.
func (order schemaOrder) position(parent *xmlNode, local string) int {
	target, ok := order.rank(local)
	if !ok {
		return -1
	}
	for i, n := range parent.Nodes {
		if r, known := order.rank(n.Local()); known && r > target {
			return i
		}
	}
	return -1
}

// insert child into parent keeping schema order
func (order schemaOrder) insert(parent, child *xmlNode) {
	parent.insertAt(order.position(parent, child.Local()), child)
}
