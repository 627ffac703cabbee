// cmd/touchhand/commands.go
package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tamzrod/touchhand/internal/hand"
	"github.com/tamzrod/touchhand/internal/regmap"
)

var clearErrorsCmd = &cobra.Command{
	Use:   "clear-errors",
	Short: "Clear latched finger errors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHand(cmd, func(h *hand.Hand) error {
			if err := h.ClearErrors(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "errors cleared")
			return nil
		})
	},
}

var calibrateForceCmd = &cobra.Command{
	Use:   "calibrate-force",
	Short: "Start force sensor calibration (hand must be unloaded)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withHand(cmd, func(h *hand.Hand) error {
			if err := h.CalibrateForce(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "force calibration started")
			return nil
		})
	},
}

var actionCmd = &cobra.Command{
	Use:   "action <seq>",
	Short: "Run a stored action sequence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid sequence %q: %w", args[0], err)
		}
		return withHand(cmd, func(h *hand.Hand) error {
			if err := h.RunAction(seq); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "action %d started\n", seq)
			return nil
		})
	},
}

var registersCmd = &cobra.Command{
	Use:   "registers",
	Short: "List the register directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := make([][]string, 0, len(regmap.Entries()))
		for _, e := range regmap.Entries() {
			rows = append(rows, []string{e.Name, strconv.Itoa(int(e.Address))})
		}

		cell := lipgloss.NewStyle().PaddingRight(2)
		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderTop(false).
			BorderBottom(false).
			BorderLeft(false).
			BorderRight(false).
			BorderHeader(false).
			BorderColumn(false).
			StyleFunc(func(row, col int) lipgloss.Style { return cell }).
			Headers("NAME", "ADDRESS").
			Rows(rows...)

		_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return err
	},
}

func init() {
	rootCmd.AddCommand(clearErrorsCmd)
	rootCmd.AddCommand(calibrateForceCmd)
	rootCmd.AddCommand(actionCmd)
	rootCmd.AddCommand(registersCmd)
}
