// promptlens: deterministic prompt-clarity analysis.
//
// Exposes three rule-based text operations — structuring a prompt into
// a fixed JSON record, detecting clarity gaps, and producing a refined
// rewrite — over MCP stdio transport and as equivalent CLI commands.
//
// Usage:
//
//	promptlens serve              # Start the MCP server (stdio transport)
//	promptlens gaps <text>        # Analyze a prompt for clarity gaps
//	promptlens convert <text>     # Structure a prompt into JSON
//	promptlens refine <text>      # Rewrite a prompt to address its gaps
//	promptlens update             # Update to the latest version
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/avillar/promptlens/internal/analyzer"
	"github.com/avillar/promptlens/internal/extractor"
	"github.com/avillar/promptlens/internal/schema"
	plserver "github.com/avillar/promptlens/internal/server"
	"github.com/avillar/promptlens/internal/tools"
	"github.com/avillar/promptlens/internal/updater"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:     "promptlens",
		Short:   "Deterministic prompt-clarity analysis over MCP and the command line",
		Version: plserver.Version,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newGapsCmd())
	root.AddCommand(newRefineCmd())
	root.AddCommand(newUpdateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Background version check — prints to stderr so it doesn't
			// interfere with MCP's stdio transport on stdout.
			go notifyUpdates()

			// The stdio server manages its own lifecycle: it returns
			// when the client closes stdin.
			return server.ServeStdio(plserver.New())
		},
	}
}

func newConvertCmd() *cobra.Command {
	var file string
	var compact bool
	cmd := &cobra.Command{
		Use:   "convert [text...]",
		Short: "Structure a prompt into the fixed JSON record",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := promptText(args, file)
			if err != nil {
				return err
			}
			return emit(extractor.Convert(text), schema.ValidateConvert, compact)
		},
	}
	addInputFlags(cmd, &file, &compact)
	return cmd
}

func newGapsCmd() *cobra.Command {
	var file string
	var compact bool
	cmd := &cobra.Command{
		Use:   "gaps [text...]",
		Short: "Analyze a prompt for clarity gaps and score it",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := promptText(args, file)
			if err != nil {
				return err
			}
			report := analyzer.Analyze(text)
			return emit(tools.GapsResponse{
				Success:             true,
				Gaps:                report.Gaps,
				OverallClarityScore: report.OverallClarityScore,
			}, schema.ValidateGaps, compact)
		},
	}
	addInputFlags(cmd, &file, &compact)
	return cmd
}

func newRefineCmd() *cobra.Command {
	var file string
	var compact bool
	cmd := &cobra.Command{
		Use:   "refine [text...]",
		Short: "Rewrite a prompt to address its clarity gaps",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := promptText(args, file)
			if err != nil {
				return err
			}
			res := extractor.Refine(text)
			return emit(tools.RefineResponse{
				Success:        true,
				OriginalPrompt: res.OriginalPrompt,
				RefinedPrompt:  res.RefinedPrompt,
				Improvements:   res.Improvements,
			}, schema.ValidateRefine, compact)
		},
	}
	addInputFlags(cmd, &file, &compact)
	return cmd
}

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update to the latest released version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(os.Stderr, "Checking for updates...")

			result := updater.CheckVersion(plserver.Version)
			if !result.UpdateAvailable {
				fmt.Fprintf(os.Stderr, "Already at the latest version (v%s)\n", result.CurrentVersion)
				return nil
			}

			fmt.Fprintf(os.Stderr, "New version available: v%s → v%s\n", result.CurrentVersion, result.LatestVersion)
			fmt.Fprintln(os.Stderr, "Downloading...")

			if err := updater.SelfUpdate(plserver.Version); err != nil {
				return fmt.Errorf("update failed: %w (download manually from %s)", err, result.ReleaseURL)
			}

			fmt.Fprintf(os.Stderr, "Updated to v%s. Restart promptlens to use the new version.\n", result.LatestVersion)
			return nil
		},
	}
}

func addInputFlags(cmd *cobra.Command, file *string, compact *bool) {
	cmd.Flags().StringVarP(file, "file", "f", "", "read the prompt from a file instead of arguments")
	cmd.Flags().BoolVar(compact, "compact", false, "emit single-line JSON")
}

// promptText resolves the input text from args or --file. Empty input
// is rejected here — the analysis core never sees an empty string.
func promptText(args []string, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			return "", fmt.Errorf("%s is empty — provide a non-empty prompt", file)
		}
		return text, nil
	}

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return "", fmt.Errorf("provide the prompt text as arguments or via --file")
	}
	return text, nil
}

// emit serializes v, validates it against the response schema, and
// prints it to stdout.
func emit(v any, check func([]byte) error, compact bool) error {
	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	if err := check(data); err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// notifyUpdates runs a best-effort version check and prints a notice to
// stderr if an update is available.
func notifyUpdates() {
	result := updater.CheckVersion(plserver.Version)
	if result.UpdateAvailable {
		fmt.Fprintf(os.Stderr,
			"\n  Update available: v%s → v%s\n"+
				"  Run: promptlens update\n"+
				"  Release: %s\n\n",
			result.CurrentVersion, result.LatestVersion, result.ReleaseURL,
		)
	}
}
