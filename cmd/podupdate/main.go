package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/podupdate/internal"
	"github.com/rios0rios0/podupdate/internal/infrastructure/controllers"
)

// flagged is implemented by controllers that carry their own flags.
type flagged interface {
	AddFlags(cmd *cobra.Command)
}

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "podupdate",
		Short: "Open a pull request whenever a dependency update changes the lockfile",
		Long: `Run a dependency update command (e.g. "pod update"), compare the lockfile
before and after, and open a pull request listing every package whose
resolved version changed.

Supports Podfile.lock (default), Cargo.lock, go.mod and .terraform.lock.hcl,
publishing to GitHub, GitLab or Azure DevOps.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	controllers.AddGlobalFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		if f, ok := ctrl.(flagged); ok {
			f.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()
	addSubcommands(cobraRoot, injectAppContext())

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'podupdate': %s", err)
	}
}
