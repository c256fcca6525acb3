// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/blossomdoc

// blossomdoc renders API documentation from endpoint catalog snapshots.
package main

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/blossomdoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/blossomdoc"
	_buildTime string
)

// cliOptions describes blossomdoc CLI flags and subcommands.
type cliOptions struct {
	Version versionCommand `command:"version" description:"Print version information"`
	Render  renderCommand  `command:"render" description:"Render API documentation from catalog snapshot"`
	Task    taskCommand    `command:"task" description:"Run documentation task and print its output fields"`
}

// logFlags groups diagnostic output flags.
type logFlags struct {
	Verbose bool `short:"v" long:"verbose" description:"Print debug diagnostics to stderr"`
}

// renderCommand renders documentation from catalog snapshot.
type renderCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"catalog" description:"Input catalog YAML file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output document file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	RenderFlags struct {
		Type      string `short:"t" long:"type" description:"Document type" choice:"rst" choice:"pdf" choice:"md" default:"rst"`
		Component string `short:"c" long:"component" description:"Component name used as title (defaults to catalog value)"`
		Base64    bool   `short:"b" long:"base64" description:"Encode document as base64"`
	} `group:"Render"`

	LogFlags logFlags `group:"Logging"`
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(renderOptions{
		InputPath:  command.Args.Input,
		OutputPath: command.Args.Output,
		Type:       blossomdoc.OutputType(command.RenderFlags.Type),
		Component:  command.RenderFlags.Component,
		Base64:     command.RenderFlags.Base64,
		Verbose:    command.LogFlags.Verbose,
	})
}

// taskCommand runs documentation task against catalog snapshot.
type taskCommand struct {
	runner *cliRunner
	Args   struct {
		Input string `positional-arg-name:"catalog" description:"Input catalog YAML file path (optional; stdin when omitted)"`
	} `positional-args:"yes"`

	TaskFlags struct {
		Type string `short:"t" long:"type" description:"Value of the task input field \"type\"" default:"pdf"`
	} `group:"Task"`

	LogFlags logFlags `group:"Logging"`
}

// Execute runs task subcommand.
func (command *taskCommand) Execute(_ []string) error {
	return command.runner.runTask(command.Args.Input, command.TaskFlags.Type, command.LogFlags.Verbose)
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo(command.runner.stdout)
	return nil
}

// renderOptions configures one render subcommand run.
type renderOptions struct {
	InputPath  string
	OutputPath string
	Type       blossomdoc.OutputType
	Component  string
	Base64     bool
	Verbose    bool
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "blossomdoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// logger builds stderr diagnostics logger; warnings only unless verbose.
func (runner *cliRunner) logger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(runner.stderr, &slog.HandlerOptions{Level: level}))
}

// runRender renders documentation and writes result to stdout or file.
func (runner *cliRunner) runRender(opt renderOptions) error {
	snapshot, err := runner.loadSnapshot(opt.InputPath)
	if err != nil {
		return err
	}

	component := strings.TrimSpace(opt.Component)
	if component == "" {
		component = snapshot.Component
	}

	if !opt.Type.Supported() {
		_, _ = fmt.Fprintf(runner.stderr, "warning: document type %q is not implemented; output is empty\n", opt.Type)
	}

	renderOpt := blossomdoc.Options{Logger: runner.logger(opt.Verbose)}
	rendered := blossomdoc.Generate(component, snapshot.Registry, snapshot.Catalog, opt.Type, renderOpt)
	if opt.Base64 {
		rendered = base64.StdEncoding.EncodeToString([]byte(rendered))
	}

	return runner.writeOutput(opt.OutputPath, rendered, "document")
}

// runTask installs documentation task into snapshot, runs it and prints output fields as JSON.
func (runner *cliRunner) runTask(inputPath, outputType string, verbose bool) error {
	snapshot, err := runner.loadSnapshot(inputPath)
	if err != nil {
		return err
	}

	renderOpt := blossomdoc.Options{Logger: runner.logger(verbose)}
	task := blossomdoc.NewDocumentationTask(snapshot.Component, snapshot.Registry, snapshot.Catalog, renderOpt)
	if err := blossomdoc.Install(snapshot.Registry, snapshot.Catalog, task); err != nil {
		return fmt.Errorf("install documentation task: %w", err)
	}

	output, err := task.Run(url.Values{blossomdoc.DocumentationTypeField: {outputType}})
	if err != nil {
		return fmt.Errorf("run documentation task: %w", err)
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("encode task output: %w", err)
	}

	return runner.writeOutput("", string(data)+"\n", "task output")
}

// loadSnapshot reads catalog from file path or stdin.
func (runner *cliRunner) loadSnapshot(path string) (blossomdoc.Snapshot, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		snapshot, err := blossomdoc.LoadCatalogFile(path)
		if err != nil {
			return blossomdoc.Snapshot{}, fmt.Errorf("load catalog %q: %w", path, err)
		}

		return snapshot, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return blossomdoc.Snapshot{}, fmt.Errorf("read catalog from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return blossomdoc.Snapshot{}, errors.New("read catalog from stdin: empty input")
	}

	snapshot, err := blossomdoc.LoadCatalog(data)
	if err != nil {
		return blossomdoc.Snapshot{}, fmt.Errorf("load catalog from stdin: %w", err)
	}

	return snapshot, nil
}

// writeOutput writes content to stdout when path is empty, otherwise to file.
func (runner *cliRunner) writeOutput(path, content, what string) error {
	if strings.TrimSpace(path) == "" {
		if _, err := io.WriteString(runner.stdout, content); err != nil {
			return fmt.Errorf("write %s to stdout: %w", what, err)
		}

		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", what, path, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Render.runner = runner
	options.Task.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"render": strings.TrimSpace(fmt.Sprintf(`
Render reStructuredText API documentation from a catalog snapshot.
Reads catalog from file argument or stdin; writes document to file argument or stdout.
Type "pdf" emits the same RST for a downstream converter; "md" is not implemented yet.

Examples:
> $ %s render catalog.yaml > api.rst
> $ cat catalog.yaml | %s render -c misaka --base64
`, programName, programName)),
		"task": strings.TrimSpace(fmt.Sprintf(`
Install the get_api_documentation task at GET v1/documentation/api,
run it with the given "type" input and print its output fields as JSON.

Examples:
> $ %s task catalog.yaml
> $ %s task -t rst catalog.yaml
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo(output io.Writer) {
	_, _ = fmt.Fprintf(output, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
