package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"questa/internal/config"
	"questa/internal/storage"
)

const Version = "0.1.0"

var (
	flagDBPath     string
	flagConfigPath string
	flagEphemeral  bool
)

var rootCmd = &cobra.Command{
	Use:           "questa",
	Short:         "questa — 7-day quest self-improvement tracker",
	Long:          "questa is a local-first terminal tracker: pick growth categories, work through a 7-day quest plan, and watch your rank climb.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "path to the snapshot database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "keep state in memory only")

	rootCmd.AddCommand(
		newRunCmd(),
		newStatusCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "questa failed: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves defaults, the YAML file, env overrides, then flags.
func loadConfig() (config.RuntimeConfig, error) {
	cfg := config.DefaultRuntimeConfig()

	path := flagConfigPath
	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err == nil {
			path = defaultPath
		}
	}
	if path != "" {
		loaded, err := config.LoadFile(cfg, path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	cfg = config.FromEnv(cfg)
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagEphemeral {
		cfg.Ephemeral = true
	}
	return cfg, nil
}

// openStore picks the snapshot store for this invocation. The returned close
// function is a no-op for the in-memory store.
func openStore(cfg config.RuntimeConfig) (storage.Store, func(), error) {
	if cfg.Ephemeral {
		return storage.NewMemoryStore(), func() {}, nil
	}
	path := cfg.DBPath
	if path == "" {
		defaultPath, err := storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
		path = defaultPath
	}
	store, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}
