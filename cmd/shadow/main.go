package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/deepnoodle-ai/wonton/color"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	app := cli.New("shadow").
		Description("Inspect proxy trap dispatch for a dynamic object model").
		Version(version).
		AddCompletionCommand()

	// Global flags
	app.GlobalFlags(
		cli.Bool("no-color", "").Env("NO_COLOR").Help("Disable colored output"),
	)

	// Root command: build an object from JSON, wrap it in a tracing proxy,
	// and apply a sequence of operations to it
	app.Main().
		Args("ops...").
		Flags(
			cli.String("json", "j").Help("Inline JSON document for the target object"),
			cli.String("file", "f").Help("File containing the JSON document"),
			cli.Bool("freeze", "").Help("Freeze the target before applying operations"),
			cli.Bool("quiet", "q").Help("Disable trap tracing output"),
		).
		Run(traceHandler)

	// Version command with JSON support
	app.Command("version").
		Description("Print version information").
		Flags(
			cli.String("output", "o").Enum("json", "text").Help("Output format"),
		).
		Run(versionHandler)

	if err := app.Execute(); err != nil {
		if cli.IsHelpRequested(err) {
			return
		}
		printError(err.Error())
		os.Exit(cli.GetExitCode(err))
	}
}

func versionHandler(ctx *cli.Context) error {
	if ctx.String("output") == "json" {
		info, err := json.MarshalIndent(map[string]any{
			"version": version,
			"commit":  commit,
			"date":    date,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(info))
	} else {
		fmt.Println(version)
	}
	return nil
}

func printError(msg string) {
	if color.ShouldColorize(os.Stderr) {
		msg = color.Red.Apply(msg)
	}
	os.Stderr.WriteString(msg + "\n")
}
