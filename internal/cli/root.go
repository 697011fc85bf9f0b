package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bobiverse/pptxbullet"
)

// options shared by all commands
type options struct {
	debug      bool
	configPath string
	cfg        pptxbullet.Config
}

// Execute runs the root command, exits with status 1 on error
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: pptxbullet.DefaultConfig()}

	cmd := &cobra.Command{
		Use:          "pptxbullet",
		Short:        "Read and set bullet styles of presentation paragraphs",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if opts.configPath != "" {
				cfg, err := pptxbullet.LoadConfig(opts.configPath)
				if err != nil {
					return err
				}
				opts.cfg = cfg
			}
			pptxbullet.Debug = opts.debug || opts.cfg.Debug
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "trace every structural edit to stderr")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "yaml config with bullet_char / number_scheme")

	cmd.AddCommand(inspectCmd(opts))
	cmd.AddCommand(setCmd(opts))
	cmd.AddCommand(applyCmd(opts))
	cmd.AddCommand(demoCmd(opts))
	return cmd
}

// Write xml to output file, stdout when none given
func save(cmd *cobra.Command, tf *pptxbullet.TextFrame, output string) error {
	if output == "" || output == "-" {
		return tf.Export(cmd.OutOrStdout())
	}
	return tf.ExportFile(output)
}
