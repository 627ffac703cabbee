// cmd/touchhand/set.go
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tamzrod/touchhand/internal/config"
	"github.com/tamzrod/touchhand/internal/hand"
	"github.com/tamzrod/touchhand/internal/regmap"
)

var setCmd = &cobra.Command{
	Use:   "set <angle|force|speed> v1 v2 v3 v4 v5 v6",
	Short: "Write a 6-value actuator setpoint",
	Long: `Write angleSet, forceSet or speedSet.

Each value must be in 0..1000, or -1 to leave that finger unchanged.`,
	Args: cobra.ExactArgs(1 + regmap.VectorLen),
	RunE: runSet,
}

func init() {
	// everything after the target is positional, so -1 is a value, not a flag
	setCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(setCmd)
}

func parseSetTarget(name string) (regmap.Vector, error) {
	switch strings.ToLower(name) {
	case "angle", "angleset":
		return regmap.AngleSet, nil
	case "force", "forceset":
		return regmap.ForceSet, nil
	case "speed", "speedset":
		return regmap.SpeedSet, nil
	}
	return 0, fmt.Errorf("%w: %q is not writable", regmap.ErrUnknownRegister, name)
}

func parseValues(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", a, err)
		}
		out = append(out, v)
	}
	if err := config.ValidateVector(out); err != nil {
		return nil, err
	}
	return out, nil
}

func runSet(cmd *cobra.Command, args []string) error {
	target, err := parseSetTarget(args[0])
	if err != nil {
		return err
	}
	values, err := parseValues(args[1:])
	if err != nil {
		return err
	}

	return withHand(cmd, func(h *hand.Hand) error {
		if err := h.WriteVector6(target, values); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s <- %v\n", target, values)
		return nil
	})
}
