package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bobiverse/pptxbullet"
)

const previewLen = 50

func inspectCmd(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show bullet style of every paragraph in a text body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tf, err := pptxbullet.OpenTextFrame(args[0])
			if err != nil {
				return err
			}
			printReports(cmd.OutOrStdout(), pptxbullet.Inspect(tf))
			return nil
		},
	}
}

func printReports(w io.Writer, reports []pptxbullet.ParagraphReport) {
	for _, r := range reports {
		style := color.HiBlackString("%-6s", r.Style)
		switch r.Style {
		case pptxbullet.BulletStyleBullet:
			style = color.GreenString("%-6s", r.Style)
		case pptxbullet.BulletStyleNumber:
			style = color.CyanString("%-6s", r.Style)
		}

		fmt.Fprintf(w, "[%d] bullet_style=%s level=%d text=%q\n", r.Index, style, r.Level, r.Preview(previewLen))
		for _, m := range r.Markers {
			fmt.Fprintf(w, "      XML: %s\n", m)
		}
		if r.Malformed() {
			fmt.Fprintln(w, color.YellowString("      conflicting markers, first one wins"))
		}
	}
}
