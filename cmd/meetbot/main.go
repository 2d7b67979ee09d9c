// meetbot is a registration datastore and admin CLI for community meetings.
package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/girltalk-community/meetbot/pkg/config"
	mlog "github.com/girltalk-community/meetbot/pkg/log"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

var (
	// Version contains the application version number. It's set via ldflags
	// when building.
	Version = ""

	// CommitSHA contains the SHA of the commit that this application was
	// built against. It's set via ldflags when building.
	CommitSHA = ""

	rootCmd = &cobra.Command{
		Use:          "meetbot",
		Short:        "A meeting registration store for the Girl Talk Community",
		Long:         "Meetbot stores community meetings and member registrations.",
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.AddCommand(
		initCmd,
		meetingCmd,
		registerCmd,
		registrationsCmd,
		manCmd,
	)

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Sum != "" {
			Version = info.Main.Version
		} else {
			Version = "unknown (built from source)"
		}
	}
	rootCmd.Version = Version
}

func main() {
	ctx := context.Background()

	cfg := config.DefaultConfig()
	if cfg.Exist() {
		if err := cfg.Parse(); err != nil {
			log.Fatal(err)
		}
	} else {
		// Write the default config to disk.
		if err := cfg.WriteConfig(); err != nil {
			log.Fatal("write default config", "error", err)
		}
		if err := cfg.ParseEnv(); err != nil {
			log.Fatal(err)
		}
	}

	ctx = config.WithContext(ctx, cfg)

	logger, f, err := mlog.NewLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		defer f.Close() // nolint: errcheck
	}

	// Set global logger
	log.SetDefault(logger)

	// Set the max number of processes to the number of CPUs.
	// This is useful when running meetbot in a container.
	if _, err := maxprocs.Set(maxprocs.Logger(log.Debugf)); err != nil {
		log.Warn("couldn't set automaxprocs", "error", err)
	}

	ctx = log.WithContext(ctx, logger)

	if rootCmd.ExecuteContext(ctx) != nil {
		os.Exit(1)
	}
}
