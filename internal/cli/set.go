package cli

import (
	"github.com/spf13/cobra"

	"github.com/bobiverse/pptxbullet"
)

func setCmd(opts *options) *cobra.Command {
	var index int
	var style string
	var level int
	var output string

	c := &cobra.Command{
		Use:   "set FILE",
		Short: "Set bullet style (bullet, number, none) and/or level of one paragraph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := pptxbullet.ParseBulletStyle(style)
			if err != nil {
				return err
			}

			tf, err := pptxbullet.OpenTextFrame(args[0])
			if err != nil {
				return err
			}
			p, err := tf.Paragraph(index)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("level") {
				p.SetLevel(level)
			}
			// empty style clears, only applied when asked for
			if cmd.Flags().Changed("style") {
				if err := p.SetBulletStyleWith(bs, opts.cfg); err != nil {
					return err
				}
			}
			return save(cmd, tf, output)
		},
	}

	c.Flags().IntVarP(&index, "paragraph", "p", 0, "Paragraph index (0 based)")
	c.Flags().StringVarP(&style, "style", "s", "", `Bullet style: "bullet", "number", "none" or ""`)
	c.Flags().IntVarP(&level, "level", "l", 0, "Indentation level written to lvl")
	c.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout when omitted)")
	c.MarkFlagsOneRequired("style", "level")
	return c
}
