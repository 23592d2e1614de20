package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/md2docx/internal/appconfig"
	"pkt.systems/md2docx/internal/convert"
	"pkt.systems/md2docx/internal/format"
	"pkt.systems/pslog"
)

func newInspectCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "inspect <input.md>",
		Short: "Print the document outline without writing a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := pslog.Ctx(cmd.Context())
			cfg, err := appconfig.Load(cfgPath)
			if err != nil {
				return err
			}
			source, err := convert.ReadSource(args[0])
			if err != nil {
				return err
			}
			doc, stats := convert.New(converterOptions(cfg)).Document(cmd.Context(), source)
			out := cmd.OutOrStdout()
			for _, line := range format.NewOutlineRenderer().Outline(doc) {
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			logger.Info("inspect done", "source", args[0], "lines", stats.Lines, "containers", stats.Containers(), "skipped", stats.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	return cmd
}
