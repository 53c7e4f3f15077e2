package controllers

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/podupdate/internal/domain/commands"
	"github.com/rios0rios0/podupdate/internal/domain/entities"
)

// UpdateController handles the "update" subcommand.
type UpdateController struct {
	command commands.Update
	getenv  func(string) string
}

// NewUpdateController creates a new UpdateController.
func NewUpdateController(command commands.Update) *UpdateController {
	return &UpdateController{command: command, getenv: os.Getenv}
}

// GetBind returns the Cobra command metadata for the update controller.
func (it *UpdateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "update",
		Short: "Run the update command and open a pull request with the changes",
		Long: `Snapshot the lockfile, run the configured update command, snapshot it again
and compare both. When any package changed version, commit the lockfile on a
new branch and open a pull request whose body lists every updated package.

Inputs come from the config file, then INPUT_* environment variables
(INPUT_UPDATE_CMD, INPUT_TOKEN, ...), then command-line flags.`,
	}
}

// AddFlags adds the update-specific flags to the given Cobra command.
func (it *UpdateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagUpdateCmd, "", "Shell command that updates the lockfile (e.g. \"pod update\")")
	cmd.Flags().String(flagWorkingDir, "", "Directory the update command runs in")
	cmd.Flags().String(flagLockfile, "", "Lockfile path relative to the working directory")
	cmd.Flags().String(flagBaseBranch, "", "Branch the pull request targets")
	cmd.Flags().String(flagCommitEmail, "", "Commit author email")
	cmd.Flags().String(flagCommitUsername, "", "Commit author name")
	cmd.Flags().String(flagCommitTitle, "", "Commit message and pull request title")
	cmd.Flags().String(flagProvider, "", "Git hosting provider (github, gitlab, azuredevops)")
	cmd.Flags().String(flagRepository, "", "Target repository as owner/name (default: detected)")
	cmd.Flags().String(flagBranchPrefix, "", "Prefix of the generated branch name")
	cmd.Flags().Bool(flagSkipUnchanged, true, "Skip diffing when the lockfile bytes did not change")
	cmd.Flags().Bool(flagChangelog, false, "Add an entry per update to CHANGELOG.md")
}

// Execute runs the update pipeline.
func (it *UpdateController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := it.loadSettings(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	result, err := it.command.Execute(context.Background(), settings)
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	switch result.Status {
	case entities.StatusPublished:
		logger.Infof("Done: %d packages updated, pull request %s", len(result.Updates), result.PullRequest.URL)
	case entities.StatusLogged:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Report.Markdown())
	case entities.StatusNoChanges:
		logger.Info("Done: nothing to update")
	}
	return nil
}

// loadSettings layers config file, action inputs and flags, resolves the
// token once from the final value, then validates.
func (it *UpdateController) loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	if verbose, _ := cmd.Flags().GetBool(flagVerbose); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	cfgPath, _ := cmd.Flags().GetString(flagConfig)
	if cfgPath == "" {
		found, findErr := entities.FindConfigFile()
		if findErr != nil {
			logger.Debugf("No config file found, using defaults: %v", findErr)
		}
		cfgPath = found
	}
	if cfgPath != "" {
		logger.Infof("Using config file: %s", cfgPath)
	}

	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		return nil, err
	}
	settings.ApplyActionInputs(it.getenv)
	applyFlags(cmd, settings)
	settings.Token = entities.ResolveToken(settings.Token)

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

func applyFlags(cmd *cobra.Command, settings *entities.Settings) {
	strFlags := map[string]*string{
		flagUpdateCmd:      &settings.UpdateCommand,
		flagWorkingDir:     &settings.WorkingDir,
		flagLockfile:       &settings.Lockfile,
		flagBaseBranch:     &settings.BaseBranch,
		flagCommitEmail:    &settings.CommitEmail,
		flagCommitUsername: &settings.CommitUsername,
		flagCommitTitle:    &settings.CommitTitle,
		flagProvider:       &settings.Provider,
		flagRepository:     &settings.Repository,
		flagBranchPrefix:   &settings.BranchPrefix,
	}
	for name, target := range strFlags {
		if cmd.Flags().Changed(name) {
			*target, _ = cmd.Flags().GetString(name)
		}
	}

	if cmd.Flags().Changed(flagSkipUnchanged) {
		settings.SkipUnchanged, _ = cmd.Flags().GetBool(flagSkipUnchanged)
	}
	if cmd.Flags().Changed(flagChangelog) {
		settings.Changelog, _ = cmd.Flags().GetBool(flagChangelog)
	}
	if token, _ := cmd.Flags().GetString(flagToken); token != "" {
		settings.Token = token
	}
	if dryRun, _ := cmd.Flags().GetBool(flagDryRun); dryRun {
		settings.Publish = false
	}
}
