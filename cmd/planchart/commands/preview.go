package commands

import (
	"fmt"

	"planchart/internal/planning"
	"planchart/internal/visuals"
	"planchart/internal/workbook"

	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	var rf rangeFlags

	cmd := &cobra.Command{
		Use:   "preview <planning-file>",
		Short: "Print the planning chart to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := rf.options(cfg)
			if err != nil {
				return err
			}

			doc, err := planning.Load(args[0])
			if err != nil {
				return err
			}

			start, end := workbook.Range(doc, opts)
			fmt.Fprint(cmd.OutOrStdout(), visuals.RenderPreview(doc.Assets, start, end, opts.Palette))
			return nil
		},
	}

	rf.register(cmd)
	return cmd
}
