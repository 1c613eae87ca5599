package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/toolcrib/cellmon/internal/app"
	"github.com/toolcrib/cellmon/internal/backend"
	"github.com/toolcrib/cellmon/internal/cell"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(ctx)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cellmon: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(ctx context.Context) *cobra.Command {
	var (
		configPath string
		prefsPath  string
		verbose    bool
	)

	root := &cobra.Command{
		Use:   "cellmon",
		Short: "Operator console for the tool-crib cell monitor",
		Long: "cellmon shows the live door and tool-cycle state of every monitored cell.\n" +
			"It keeps a local snapshot in sync with the backend over a websocket push\n" +
			"feed, with periodic polling as bootstrap and fallback.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(ctx, app.Options{
				ConfigPath: configPath,
				PrefsPath:  prefsPath,
				Verbose:    verbose,
			})
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "override config path (optional)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVar(&prefsPath, "prefs", "", "override preferences path (optional)")

	root.AddCommand(newMockCmd(ctx, &verbose))
	root.AddCommand(newPokeCmd())

	return root
}

func newMockCmd(ctx context.Context, verbose *bool) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Run the development mock backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunMock(ctx, listen, *verbose)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "127.0.0.1:8000", "address to listen on")
	return cmd
}

func addServerFlag(flags *pflag.FlagSet, server *string) {
	flags.StringVar(server, "server", "http://127.0.0.1:8000", "mock backend base URL")
}

func newPokeCmd() *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "poke <cell> <open|closed>",
		Short: "Inject a door reading into a mock backend",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("cell must be a 1-based index, got %q", args[0])
			}
			client, err := backend.NewClient(server)
			if err != nil {
				return err
			}
			if err := client.SetMock(cmd.Context(), index, cell.DoorState(args[1])); err != nil {
				return err
			}
			fmt.Printf("cell %d -> %s\n", index, args[1])
			return nil
		},
	}
	addServerFlag(cmd.Flags(), &server)
	return cmd
}
