package pptxbullet_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bobiverse/pptxbullet"
)

// Text body as found in a slide shape with existing bullets
const subtitleXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:txBody xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <a:bodyPr>
    <a:normAutofit/>
  </a:bodyPr>
  <a:lstStyle/>
  <a:p>
    <a:r>
      <a:rPr lang="en-US" dirty="0"/>
      <a:t>Agenda</a:t>
    </a:r>
  </a:p>
  <a:p>
    <a:pPr marL="285750" indent="-285750">
      <a:buFont typeface="Arial" panose="020B0604020202020204" pitchFamily="34" charset="0"/>
      <a:buChar char="•"/>
    </a:pPr>
    <a:r>
      <a:rPr lang="en-US" dirty="0"/>
      <a:t>Cloud-native architecture</a:t>
    </a:r>
  </a:p>
  <a:p>
    <a:pPr marL="342900" lvl="1" indent="-342900">
      <a:buFont typeface="+mj-lt"/>
      <a:buAutoNum type="arabicPeriod"/>
    </a:pPr>
    <a:r>
      <a:rPr lang="en-US" dirty="0"/>
      <a:t>Assessment &amp; planning</a:t>
    </a:r>
  </a:p>
  <a:p>
    <a:pPr>
      <a:buNone/>
    </a:pPr>
    <a:r>
      <a:rPr lang="en-US" dirty="0"/>
      <a:t>Summary</a:t>
    </a:r>
    <a:endParaRPr lang="en-US" dirty="0"/>
  </a:p>
</p:txBody>`

func styles(tf *pptxbullet.TextFrame) []pptxbullet.BulletStyle {
	var out []pptxbullet.BulletStyle
	for _, p := range tf.Paragraphs() {
		out = append(out, p.BulletStyle())
	}
	return out
}

func equalStyles(a, b []pptxbullet.BulletStyle) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestReadExistingBullets(t *testing.T) {
	tf, err := pptxbullet.ParseTextFrame([]byte(subtitleXML))
	if err != nil {
		t.Fatalf("ParseTextFrame: %v", err)
	}

	want := []pptxbullet.BulletStyle{
		pptxbullet.BulletStyleNone,
		pptxbullet.BulletStyleBullet,
		pptxbullet.BulletStyleNumber,
		pptxbullet.BulletStyleNone,
	}
	if got := styles(tf); !equalStyles(got, want) {
		t.Fatalf("styles = %v, want %v", got, want)
	}

	reports := pptxbullet.Inspect(tf)
	if len(reports) != 4 {
		t.Fatalf("reports = %d", len(reports))
	}
	if reports[2].Level != 1 || reports[2].Text != "Assessment & planning" {
		t.Fatalf("report 2 = %+v", reports[2])
	}
	if len(reports[3].Markers) != 1 || reports[3].Markers[0].Kind != pptxbullet.MarkerNone {
		t.Fatalf("report 3 markers = %v", reports[3].Markers)
	}
	if reports[0].Markers != nil {
		t.Fatalf("paragraph without a:pPr reports markers %v", reports[0].Markers)
	}
	for _, r := range reports {
		if r.Malformed() {
			t.Fatalf("paragraph %d reported malformed", r.Index)
		}
	}
}

func TestRoundTripPreservesBullets(t *testing.T) {
	tf, err := pptxbullet.ParseTextFrame([]byte(subtitleXML))
	if err != nil {
		t.Fatalf("ParseTextFrame: %v", err)
	}
	original := styles(tf)

	reloaded, err := pptxbullet.ParseTextFrame(tf.Bytes())
	if err != nil {
		t.Fatalf("reload: %v\n%s", err, tf.Bytes())
	}
	if got := styles(reloaded); !equalStyles(got, original) {
		t.Fatalf("styles after reload = %v, want %v", got, original)
	}
	if !bytes.HasPrefix(reloaded.Bytes(), []byte("<?xml")) {
		t.Fatalf("xml header lost")
	}
	if tf.Text() != reloaded.Text() {
		t.Fatalf("text changed:\n%q\n%q", tf.Text(), reloaded.Text())
	}
}

func TestModifyExistingBullets(t *testing.T) {
	tf, err := pptxbullet.ParseTextFrame([]byte(subtitleXML))
	if err != nil {
		t.Fatalf("ParseTextFrame: %v", err)
	}

	p := tf.AddParagraph()
	p.SetText("New numbered item")
	if err := p.SetBulletStyle(pptxbullet.BulletStyleNumber); err != nil {
		t.Fatalf("SetBulletStyle: %v", err)
	}

	p = tf.AddParagraph()
	p.SetText("Indented sub-item")
	p.SetLevel(2)
	if err := p.SetBulletStyle(pptxbullet.BulletStyleBullet); err != nil {
		t.Fatalf("SetBulletStyle: %v", err)
	}

	p = tf.AddParagraph()
	p.SetText("Plain text - no bullet")
	p.ClearBulletStyle()

	// switch existing bullet to numbering, font stays in front
	existing, _ := tf.Paragraph(1)
	if err := existing.SetBulletStyle(pptxbullet.BulletStyleNumber); err != nil {
		t.Fatalf("SetBulletStyle: %v", err)
	}
	if tags := strings.Join(existing.Properties().Tags(), ","); tags != "a:buFont,a:buAutoNum" {
		t.Fatalf("pPr children = %s", tags)
	}

	reloaded, err := pptxbullet.ParseTextFrame(tf.Bytes())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	want := []pptxbullet.BulletStyle{
		pptxbullet.BulletStyleNone,
		pptxbullet.BulletStyleNumber,
		pptxbullet.BulletStyleNumber,
		pptxbullet.BulletStyleNone,
		pptxbullet.BulletStyleNumber,
		pptxbullet.BulletStyleBullet,
		pptxbullet.BulletStyleNone,
	}
	if got := styles(reloaded); !equalStyles(got, want) {
		t.Fatalf("styles = %v, want %v", got, want)
	}
	if lvl := reloaded.Paragraphs()[5].Level(); lvl != 2 {
		t.Fatalf("level = %d", lvl)
	}
}

func TestNewTextFrame(t *testing.T) {
	tf := pptxbullet.NewTextFrame()

	p1 := tf.Paragraphs()[0]
	p1.SetText("No bullet")
	if p1.BulletStyle() != pptxbullet.BulletStyleNone {
		t.Fatalf("first paragraph style = %q", p1.BulletStyle())
	}

	p2 := tf.AddParagraph()
	p2.SetText("Bullet item")
	_ = p2.SetBulletStyle(pptxbullet.BulletStyleBullet)

	p3 := tf.AddParagraph()
	p3.SetText("Numbered item")
	_ = p3.SetBulletStyle(pptxbullet.BulletStyleNumber)

	if got := tf.Text(); got != "No bullet\nBullet item\nNumbered item" {
		t.Fatalf("Text() = %q", got)
	}

	out := string(tf.Bytes())
	for _, part := range []string{
		`<p:txBody xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"`,
		`<a:bodyPr wrap="none"/><a:lstStyle/><a:p><a:r><a:t>No bullet</a:t></a:r></a:p>`,
		`<a:p><a:pPr><a:buChar char="•"/></a:pPr><a:r><a:t>Bullet item</a:t></a:r></a:p>`,
		`<a:p><a:pPr><a:buAutoNum type="arabicPeriod"/></a:pPr><a:r><a:t>Numbered item</a:t></a:r></a:p>`,
	} {
		if !strings.Contains(out, part) {
			t.Fatalf("xml misses %s:\n%s", part, out)
		}
	}
}

func TestTextFrameClear(t *testing.T) {
	tf, err := pptxbullet.ParseTextFrame([]byte(subtitleXML))
	if err != nil {
		t.Fatalf("ParseTextFrame: %v", err)
	}
	first, _ := tf.Paragraph(0)
	_ = first.SetBulletStyle(pptxbullet.BulletStyleBullet)

	tf.Clear()

	paragraphs := tf.Paragraphs()
	if len(paragraphs) != 1 {
		t.Fatalf("paragraphs after Clear = %d", len(paragraphs))
	}
	if paragraphs[0].Text() != "" {
		t.Fatalf("text after Clear = %q", paragraphs[0].Text())
	}
	// properties survive clear
	if paragraphs[0].BulletStyle() != pptxbullet.BulletStyleBullet {
		t.Fatalf("style after Clear = %q", paragraphs[0].BulletStyle())
	}
}

func TestParagraphIndexOutOfRange(t *testing.T) {
	tf := pptxbullet.NewTextFrame()
	for _, i := range []int{-1, 1, 10} {
		_, err := tf.Paragraph(i)
		if !errors.Is(err, pptxbullet.ErrInvalidArgument) {
			t.Fatalf("Paragraph(%d) err = %v", i, err)
		}
	}
}

func TestParseTextFrameErrors(t *testing.T) {
	for _, in := range []string{
		``,
		`<a:p/>`,
		`<p:txBody><a:p></p:txBody>`,
	} {
		_, err := pptxbullet.ParseTextFrame([]byte(in))
		var perr *pptxbullet.ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("ParseTextFrame(%q) err = %v, want *ParseError", in, err)
		}
	}

	_, err := pptxbullet.ReadTextFrame(io.NopCloser(strings.NewReader("")))
	var perr *pptxbullet.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("ReadTextFrame(empty) err = %v", err)
	}
}

func TestOpenAndExportFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "subtitle.xml")
	if err := os.WriteFile(src, []byte(subtitleXML), 0o644); err != nil {
		t.Fatal(err)
	}

	tf, err := pptxbullet.OpenTextFrame(src)
	if err != nil {
		t.Fatalf("OpenTextFrame: %v", err)
	}
	if tf.Path() != src {
		t.Fatalf("Path() = %s", tf.Path())
	}
	p, _ := tf.Paragraph(0)
	_ = p.SetBulletStyle(pptxbullet.BulletStyleNumber)

	dst := filepath.Join(dir, "out.xml")
	if err := tf.ExportFile(dst); err != nil {
		t.Fatalf("ExportFile: %v", err)
	}
	again, err := pptxbullet.OpenTextFrame(dst)
	if err != nil {
		t.Fatalf("OpenTextFrame(out): %v", err)
	}
	if got := again.Paragraphs()[0].BulletStyle(); got != pptxbullet.BulletStyleNumber {
		t.Fatalf("style = %q", got)
	}

	if _, err := pptxbullet.OpenTextFrame(filepath.Join(dir, "missing.xml")); err == nil {
		t.Fatalf("missing file opened")
	}

	bad := filepath.Join(dir, "bad.xml")
	_ = os.WriteFile(bad, []byte(`<a:p/>`), 0o644)
	_, err = pptxbullet.OpenTextFrame(bad)
	var perr *pptxbullet.ParseError
	if !errors.As(err, &perr) || perr.Source != bad {
		t.Fatalf("OpenTextFrame(bad) err = %v", err)
	}
}

func TestInspectMalformed(t *testing.T) {
	in := `<a:txBody><a:bodyPr/><a:p><a:pPr><a:buChar char="•"/><a:buAutoNum type="arabicPeriod"/></a:pPr><a:r><a:t>` +
		strings.Repeat("x", 60) + `</a:t></a:r></a:p></a:txBody>`
	tf, err := pptxbullet.ParseTextFrame([]byte(in))
	if err != nil {
		t.Fatalf("ParseTextFrame: %v", err)
	}

	r := pptxbullet.Inspect(tf)[0]
	if !r.Malformed() || r.Style != pptxbullet.BulletStyleBullet {
		t.Fatalf("report = %+v", r)
	}
	if p := r.Preview(50); p != strings.Repeat("x", 50)+"..." {
		t.Fatalf("Preview = %q", p)
	}
	if p := r.Preview(0); len(p) != 60 {
		t.Fatalf("Preview(0) = %q", p)
	}
}
