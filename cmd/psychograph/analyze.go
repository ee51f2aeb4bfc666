package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/psychograph/psychograph/internal/analyzer"
	"github.com/psychograph/psychograph/internal/cli"
	"github.com/psychograph/psychograph/internal/common"
	"github.com/psychograph/psychograph/internal/criteria"
	"github.com/psychograph/psychograph/internal/diagnostic"
	"github.com/psychograph/psychograph/internal/export"
	"github.com/psychograph/psychograph/internal/report"
	"github.com/psychograph/psychograph/internal/transcript"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyze a chat export file or folder",
		Long: `Analyze loads a chat export (a single messages JSON file, a conversation
folder, an export root, or a .zip archive), reconstructs every thread, and
runs the full analysis over each one.

Results are written as a JSON document for the dashboard; a styled summary
is printed to the terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringP("output", "o", "analysis_results.json", "output file for results JSON")
	cmd.Flags().String("scorer", "keyword", "diagnostic scorer (keyword, ai)")
	cmd.Flags().Int("max-lines", transcript.DefaultMaxLines, "maximum transcript lines per conversation")
	cmd.Flags().String("format", "summary", "terminal output format (summary, json)")
	cmd.Flags().Bool("demo", false, "run against synthetic demo conversations instead of an export")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	demo, _ := cmd.Flags().GetBool("demo")
	if !demo && len(args) == 0 {
		return fmt.Errorf("path to an export file or folder is required (or use --demo)")
	}

	outputPath, _ := cmd.Flags().GetString("output")
	scorerName, _ := cmd.Flags().GetString("scorer")
	maxLines, _ := cmd.Flags().GetInt("max-lines")
	format, _ := cmd.Flags().GetString("format")

	if format != "summary" && format != "json" {
		return fmt.Errorf("invalid format: %s (use summary or json)", format)
	}

	logger := slog.Default()

	client, err := createLLMClient()
	if err != nil {
		return err
	}

	analyses, err := analyzer.NewLLMService(client, logger)
	if err != nil {
		return fmt.Errorf("failed to create analysis service: %w", err)
	}

	var scorer diagnostic.Scorer
	switch scorerName {
	case "keyword":
		scorer = diagnostic.NewMatcher(logger)
	case "ai":
		scorer = diagnostic.NewAIScorer(client, logger)
	default:
		return fmt.Errorf("unsupported scorer: %s (use keyword or ai)", scorerName)
	}
	diagnostician := diagnostic.NewDiagnostician(scorer, criteria.Conditions(), logger)

	handler := cli.NewInterruptHandler(os.Stderr)
	ctx := handler.HandleInterrupts(cmd.Context())

	var threads map[string]export.Thread
	if demo {
		fmt.Fprintln(os.Stderr, cli.FormatInfo("Running in demo mode with synthetic conversations"))
		threads = demoThreads()
	} else {
		path := args[0]
		fmt.Fprintln(os.Stderr, cli.FormatInfo("Loading export from "+path))
		threads, err = export.NewLoader(logger).Load(path)
		if err != nil {
			return common.NewUserError("failed to load export", err)
		}
		fmt.Fprintln(os.Stderr, cli.FormatInfo(fmt.Sprintf("Found %d conversation thread(s)", len(threads))))
	}

	var progressOut io.Writer
	if format == "summary" {
		progressOut = os.Stderr
	}

	assembler := report.NewAssembler(analyses, diagnostician, report.AssemblerOptions{
		Logger:      logger,
		ProgressOut: progressOut,
		MaxLines:    maxLines,
	})

	result, runErr := assembler.Run(ctx, threads)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return fmt.Errorf("analysis failed: %w", runErr)
	}
	if result == nil {
		return runErr
	}

	if err := report.WriteFile(result, outputPath); err != nil {
		common.LogError(err, "Failed to write results", common.Fields{"path": outputPath})
		return err
	}
	fmt.Fprintln(os.Stderr, cli.FormatSuccess("Results saved to "+outputPath))

	switch format {
	case "json":
		if err := report.Write(result, os.Stdout); err != nil {
			return err
		}
	default:
		fmt.Println(report.NewFormatter().FormatSummary(result))
	}

	if handler.WasInterrupted() {
		return context.Canceled
	}
	return nil
}
