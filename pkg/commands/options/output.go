// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// OutputOptions selects where the generated blocks go. At least one output
// must be chosen.
type OutputOptions struct {
	Print  bool
	Export bool
}

// AddOutputArgs wires the output flags on the provided command.
func AddOutputArgs(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVarP(&o.Print, "print", "p", false,
		"Print the generated blocks to the console.")
	cmd.Flags().BoolVarP(&o.Export, "export", "x", false,
		"Insert the generated blocks into the daily note.")
}
