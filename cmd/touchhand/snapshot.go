// cmd/touchhand/snapshot.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tamzrod/touchhand/internal/export"
	"github.com/tamzrod/touchhand/internal/frame"
)

var (
	snapOut  string
	snapPlot string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Read one sensor frame and save it as an image",
	Long: `Read the 80 sensor registers once and write the heat map.

--out writes the enlarged red display frame as PNG.
--plot writes an annotated heat map; the format follows the extension (png, svg, pdf).`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapOut, "out", "o", "", "PNG output path")
	snapshotCmd.Flags().StringVar(&snapPlot, "plot", "", "Annotated heat map output path")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if snapOut == "" && snapPlot == "" {
		return fmt.Errorf("snapshot: need --out and/or --plot")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	h, cleanup, err := connect(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	raw, err := h.ReadSensorGrid()
	if err != nil {
		return err
	}
	g, err := frame.Reshape(raw, cfg.Grid.Rows, cfg.Grid.Cols)
	if err != nil {
		return err
	}

	if snapOut != "" {
		if err := export.SavePNG(snapOut, frame.ToImage(g, cfg.Grid.FullScale), cfg.Display.Scale); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", snapOut)
	}
	if snapPlot != "" {
		if err := export.WriteHeatmapPlot(snapPlot, g, cfg.Grid.FullScale); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", snapPlot)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "peak %.0f\n", g.Max())
	return nil
}
