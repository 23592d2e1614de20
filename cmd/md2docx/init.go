package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pkt.systems/md2docx/bootstrap"
	"pkt.systems/pslog"
)

func newInitCmd() *cobra.Command {
	var outputDir string
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default config and a sample markdown file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := pslog.Ctx(cmd.Context())
			out := outputDir
			if out == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				out = filepath.Join(home, ".md2docx")
			}
			paths, err := bootstrap.WriteBootstrap(out, overwrite)
			if err != nil {
				return err
			}
			logger.Info("init wrote", "path", paths.ConfigPath, "name", "config.yaml")
			logger.Info("init wrote", "path", paths.ExamplePath, "name", "example.md")
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory")
	cmd.Flags().BoolVar(&overwrite, "force", false, "overwrite existing files")
	return cmd
}
