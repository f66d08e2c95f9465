package root

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"questa/internal/model"
	"questa/internal/responder"
	"questa/internal/state"
	"questa/internal/update"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}
}

func runTUI() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	ctrl := state.NewController(store)
	if cfg.Theme.Background != "" || cfg.Theme.Text != "" {
		ctrl.SetTheme(model.Theme{Background: cfg.Theme.Background, Text: cfg.Theme.Text})
	}

	opts := update.DefaultOptions()
	if cfg.ChatDelayMs >= 0 {
		opts.ChatDelay = time.Duration(cfg.ChatDelayMs) * time.Millisecond
	}

	program := tea.NewProgram(update.NewModelWithOptions(ctrl, responder.New(), opts))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
