package controllers

import "github.com/spf13/cobra"

const (
	flagConfig         = "config"
	flagToken          = "token"
	flagDryRun         = "dry-run"
	flagVerbose        = "verbose"
	flagUpdateCmd      = "update-cmd"
	flagWorkingDir     = "working-dir"
	flagLockfile       = "lockfile"
	flagBaseBranch     = "base-branch"
	flagCommitEmail    = "commit-email"
	flagCommitUsername = "commit-username"
	flagCommitTitle    = "commit-title"
	flagProvider       = "provider"
	flagRepository     = "repository"
	flagBranchPrefix   = "branch-prefix"
	flagSkipUnchanged  = "skip-unchanged"
	flagChangelog      = "changelog"
)

// AddGlobalFlags adds the flags shared by every subcommand.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(flagConfig, "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String(flagToken, "",
		"Auth token for the Git provider (supports ${ENV_VAR} and file paths)")
	cmd.PersistentFlags().Bool(flagDryRun, false,
		"Run the update and report changes without publishing a pull request")
	cmd.PersistentFlags().BoolP(flagVerbose, "v", false,
		"Enable verbose output")
}
