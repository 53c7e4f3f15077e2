package controllers

import (
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/podupdate/internal/domain/commands"
	"github.com/rios0rios0/podupdate/internal/domain/entities"
)

var errDiffArgs = errors.New("diff needs exactly two lockfile paths: <before> <after>")

// DiffController handles the "diff" subcommand.
type DiffController struct {
	command commands.Diff
}

// NewDiffController creates a new DiffController.
func NewDiffController(command commands.Diff) *DiffController {
	return &DiffController{command: command}
}

// GetBind returns the Cobra command metadata for the diff controller.
func (it *DiffController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "diff <before> <after>",
		Short: "Compare two lockfiles and print the updated packages",
		Long: `Compare two copies of the same lockfile offline and print the markdown
table a pull request would carry. Nothing is run, committed or pushed.`,
	}
}

// Execute prints the report for the two given lockfiles.
func (it *DiffController) Execute(cmd *cobra.Command, args []string) error {
	if len(args) != 2 { //nolint:mnd // before + after
		return errDiffArgs
	}

	if verbose, _ := cmd.Flags().GetBool(flagVerbose); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	report, err := it.command.Execute(args[0], args[1])
	if err != nil {
		return fmt.Errorf("diff failed: %w", err)
	}

	if len(report.Updates()) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No packages were updated.")
		return nil
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), report.Markdown())
	return nil
}
