package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/five82/newtab/internal/app"
)

var (
	BuildVersion = "dev"
	BuildCommit  = "00000000"
	BuildDate    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(BuildVersion), fang.WithCommit(BuildCommit)); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "newtab",
		Short: "A terminal new-tab page",
		Long: `newtab is a keyboard and mouse driven home screen for the terminal:
a clock, a quick-launch grid of sites, web search with history,
the local weather and a small settings dashboard.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default $XDG_CONFIG_HOME/newtab/config.toml, or $NEWTAB_CONFIG)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default $XDG_CONFIG_HOME/newtab/prefs.toml)")
	flags.StringVar(&opts.LogPath, "log", "", "log file path (default $XDG_STATE_HOME/newtab/newtab.log)")
	flags.BoolVar(&opts.Debug, "debug", false, "log at debug level")

	root.AddCommand(&cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "newtab\n\n")
			fmt.Fprintf(out, "  Version: %s\n", BuildVersion)
			fmt.Fprintf(out, "  Commit:  %s\n", BuildCommit)
			fmt.Fprintf(out, "  Built:   %s\n", BuildDate)
			fmt.Fprintf(out, "  Runtime: %s\n", runtime.Version())
		},
	})

	return root
}
