package main

import (
	"encoding/json"
	"os"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
)

func isTerminalIO() bool {
	stdin := os.Stdin.Fd()
	stdout := os.Stdout.Fd()
	inTerm := isatty.IsTerminal(stdin) || isatty.IsCygwinTerminal(stdin)
	outTerm := isatty.IsTerminal(stdout) || isatty.IsCygwinTerminal(stdout)
	return inTerm && outTerm
}

var opLabel = color.New(color.FgCyan)

func formatOpLabel(ctx *cli.Context, spec string) string {
	if ctx.Bool("no-color") || !isatty.IsTerminal(os.Stdout.Fd()) {
		return spec
	}
	return opLabel.Sprint(spec)
}

func formatResult(ctx *cli.Context, result interface{}) (string, error) {
	var data []byte
	var err error
	if ctx.Bool("no-color") || !isatty.IsTerminal(os.Stdout.Fd()) {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = prettyjson.Marshal(result)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
