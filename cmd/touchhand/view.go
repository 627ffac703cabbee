// cmd/touchhand/view.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tamzrod/touchhand/internal/config"
	"github.com/tamzrod/touchhand/internal/display"
	"github.com/tamzrod/touchhand/internal/export"
	"github.com/tamzrod/touchhand/internal/monitoring"
	"github.com/tamzrod/touchhand/internal/motion"
	"github.com/tamzrod/touchhand/internal/poller"
	"github.com/tamzrod/touchhand/internal/publish"
)

var (
	headless   bool
	noMotion   bool
	scale      int
	intervalMs int
	logFile    string
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the tactile sensor as a live heat map",
	Long: `Connect, optionally run the startup motion, then poll the 80 sensor
registers every interval and show them as a 10x8 heat map.

Press 'q' (or Ctrl+C) to quit. With --headless the matrix is printed
to stdout instead. MQTT and PNG snapshot outputs are enabled from the config file.`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	viewCmd.Flags().BoolVar(&headless, "headless", false, "Print frames instead of opening the heat map")
	viewCmd.Flags().BoolVar(&noMotion, "no-motion", false, "Skip the startup motion block")
	viewCmd.Flags().IntVar(&scale, "scale", 0, "Display enlargement factor")
	viewCmd.Flags().IntVar(&intervalMs, "interval-ms", 0, "Poll interval in milliseconds")
	viewCmd.Flags().StringVar(&logFile, "log-file", "", "Write diagnostics here while the heat map is open")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadViewConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Session (fatal on connection failure)
	// --------------------

	h, cleanup, err := connect(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if !noMotion {
		if err := motion.Apply(ctx, h, motion.Build(cfg.Motion)); err != nil {
			return err
		}
	}

	p, err := poller.Build(*cfg, h)
	if err != nil {
		return err
	}

	// --------------------
	// Optional outputs
	// --------------------

	var sinks poller.Sinks
	if cfg.MQTT != nil {
		pub, err := publish.New(*cfg.MQTT)
		if err != nil {
			return err
		}
		defer pub.Close()
		sinks = append(sinks, pub)
	}
	if cfg.Snapshot != nil {
		sinks = append(sinks, export.NewSnapshotSink(*cfg.Snapshot))
	}

	if cfg.Display.Headless {
		sinks = append(sinks, display.Console{W: cmd.OutOrStdout()})
		return p.Run(ctx, sinks)
	}

	// --------------------
	// Heat map: UI on this goroutine, poll loop on its own
	// --------------------

	if logFile != "" {
		f, err := tea.LogToFile(logFile, "touchhand")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		monitoring.SetLogger(nil)
	}

	title := fmt.Sprintf("touchhand %s @ %s", cfg.DeviceID, cfg.Device.Endpoint)
	ui := display.NewTUI(title, cfg.Display.Scale, tea.WithAltScreen())

	return runWithUI(ctx, p, ui, append(sinks, ui))
}

// runWithUI blocks in ui.Run. The loop owns the transport until it returns;
// quitting the UI or cancelling ctx stops both.
func runWithUI(ctx context.Context, p *poller.Poller, ui *display.TUI, sink poller.Sink) error {
	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- p.Run(loopCtx, sink) }()

	go func() {
		select {
		case <-loopCtx.Done():
			ui.Quit()
		case <-ui.Done():
		}
	}()

	uiErr := ui.Run()
	cancel()
	return errors.Join(uiErr, <-errc)
}

func loadViewConfig(cmd *cobra.Command) (*config.Config, error) {
	return loadConfig(cmd, func(cfg *config.Config) {
		flags := cmd.Flags()
		if flags.Changed("headless") {
			cfg.Display.Headless = headless
		}
		if flags.Changed("scale") {
			cfg.Display.Scale = scale
		}
		if flags.Changed("interval-ms") {
			cfg.Display.IntervalMs = intervalMs
		}
	})
}
