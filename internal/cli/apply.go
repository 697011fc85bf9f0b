package cli

import (
	"github.com/spf13/cobra"

	"github.com/bobiverse/pptxbullet"
)

func applyCmd(opts *options) *cobra.Command {
	var planPath string
	var output string

	c := &cobra.Command{
		Use:   "apply FILE",
		Short: "Apply yaml plan of paragraph edits to a text body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := pptxbullet.LoadPlan(planPath)
			if err != nil {
				return err
			}
			tf, err := pptxbullet.OpenTextFrame(args[0])
			if err != nil {
				return err
			}
			if err := plan.Apply(tf, opts.cfg); err != nil {
				return err
			}
			return save(cmd, tf, output)
		},
	}

	c.Flags().StringVar(&planPath, "plan", "", "Plan file (required)")
	c.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout when omitted)")
	_ = c.MarkFlagRequired("plan")
	return c
}
