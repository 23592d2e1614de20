package main

import (
	"flag"
	"fmt"
	"os"

	"pkt.systems/md2docx/bootstrap"
)

func main() {
	var output string
	var overwrite bool
	flag.StringVar(&output, "output", ".", "output directory")
	flag.StringVar(&output, "o", ".", "output directory")
	flag.BoolVar(&overwrite, "force", false, "overwrite existing files")
	flag.Parse()

	paths, err := bootstrap.WriteBootstrap(output, overwrite)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	fmt.Fprintln(os.Stdout, paths.ConfigPath)
	fmt.Fprintln(os.Stdout, paths.ExamplePath)
}
