package cli

import (
	"github.com/spf13/cobra"

	"github.com/bobiverse/pptxbullet"
)

type demoItem struct {
	text  string
	style pptxbullet.BulletStyle
	level int
}

var demoItems = []demoItem{
	{"First bullet point", pptxbullet.BulletStyleBullet, 0},
	{"Second bullet point", pptxbullet.BulletStyleBullet, 0},
	{"Sub-item under second", pptxbullet.BulletStyleBullet, 1},
	{"Another sub-item", pptxbullet.BulletStyleBullet, 2},
	{"Back to main level", pptxbullet.BulletStyleBullet, 0},
	{"First numbered item", pptxbullet.BulletStyleNumber, 0},
	{"Second numbered item", pptxbullet.BulletStyleNumber, 1},
	{"Plain text paragraph", pptxbullet.BulletStyleNone, 0},
}

// Build sample text body with every bullet style
func buildDemo(cfg pptxbullet.Config) (*pptxbullet.TextFrame, error) {
	tf := pptxbullet.NewTextFrame()
	tf.Paragraphs()[0].SetText("My Bullet List Demo")

	for _, item := range demoItems {
		p := tf.AddParagraph()
		p.SetText(item.text)
		p.SetLevel(item.level)
		if err := p.SetBulletStyleWith(item.style, cfg); err != nil {
			return nil, err
		}
	}
	return tf, nil
}

func demoCmd(opts *options) *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "demo",
		Short: "Write sample text body with bullets, numbering and plain text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tf, err := buildDemo(opts.cfg)
			if err != nil {
				return err
			}
			return save(cmd, tf, output)
		},
	}

	c.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout when omitted)")
	return c
}
