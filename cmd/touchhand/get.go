// cmd/touchhand/get.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tamzrod/touchhand/internal/hand"
	"github.com/tamzrod/touchhand/internal/regmap"
)

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Read an actuator vector or status triple",
	Long: `Read one register group by name.

Vectors (6 values): angleSet, forceSet, speedSet, angleAct, forceAct
Status (6 bytes):   errCode, statusCode, temp
Scalar:             ID`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

// readGroup resolves name before any I/O so unknown names never hit the wire.
func readGroup(name string) (func(h *hand.Hand) ([]int, error), error) {
	if v, err := regmap.ParseVector(name); err == nil {
		return func(h *hand.Hand) ([]int, error) { return h.ReadVector6(v) }, nil
	}
	if t, err := regmap.ParseTriple(name); err == nil {
		return func(h *hand.Hand) ([]int, error) { return h.ReadStatusTriple(t) }, nil
	}
	if name == "ID" {
		return func(h *hand.Hand) ([]int, error) {
			id, err := h.ReadID()
			return []int{id}, err
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", regmap.ErrUnknownRegister, name)
}

func runGet(cmd *cobra.Command, args []string) error {
	name := args[0]
	read, err := readGroup(name)
	if err != nil {
		return err
	}

	return withHand(cmd, func(h *hand.Hand) error {
		values, err := read(h)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", name, values)
		return nil
	})
}
