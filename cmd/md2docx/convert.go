package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pkt.systems/md2docx/internal/appconfig"
	"pkt.systems/md2docx/internal/convert"
	"pkt.systems/md2docx/internal/version"
)

func newConvertCmd() *cobra.Command {
	var cfgPath string
	var output string
	cmd := &cobra.Command{
		Use:   "convert <input.md> [output.docx]",
		Short: "Convert a markdown file to a Word document",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := appconfig.Load(cfgPath)
			if err != nil {
				return err
			}
			dst, err := resolveOutput(args, output, cfg.Output.Dir)
			if err != nil {
				return err
			}
			res, err := convert.New(converterOptions(cfg)).ConvertFile(cmd.Context(), args[0], dst)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Converted %s to %s\n", res.Source, res.Output)
			return err
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output document path")
	return cmd
}

func converterOptions(cfg appconfig.Config) convert.Options {
	opts := convert.OptionsFromConfig(cfg)
	opts.Application = version.Application()
	return opts
}

func resolveOutput(args []string, flagOutput, dir string) (string, error) {
	flagOutput = strings.TrimSpace(flagOutput)
	if len(args) > 1 {
		if flagOutput != "" {
			return "", errors.New("output given both as argument and --output")
		}
		return args[1], nil
	}
	if flagOutput != "" {
		return flagOutput, nil
	}
	return convert.DefaultOutputPath(args[0], dir), nil
}
