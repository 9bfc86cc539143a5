package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"intguard/internal/vectors"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] op result t [u]",
	Short: "Evaluate one checked integer operation",
	Long: `Eval runs a single checked operation against a nominated result type and
prints the value or the failure category.

Operations: cast add sub mul div mod lsh rsh or xor and lt gt eq
Result types: i8 i16 i32 i64 u8 u16 u32 u64

Examples:
  intguard eval add u8 200 56
  intguard eval cast u8 -1
  intguard eval lsh u16 0xFF 9`,
	Args: cobra.RangeArgs(3, 4),
	RunE: runEval,
}

func init() {
	// Operands may be negative; stop flag parsing at the first positional
	// so "-1" reaches the evaluator instead of the flag parser.
	evalCmd.Flags().SetInterspersed(false)
}

func runEval(cmd *cobra.Command, args []string) error {
	op, result, t := args[0], args[1], args[2]
	u := ""
	if len(args) == 4 {
		u = args[3]
	}

	out, err := vectors.Exec(op, result, t, u)
	if err != nil {
		return err
	}

	colored := useColor(cmd, os.Stdout)
	if out.OK {
		if colored {
			fmt.Printf("%s %s\n", color.GreenString("ok"), out.Value)
		} else {
			fmt.Printf("ok %s\n", out.Value)
		}
		return nil
	}
	if colored {
		fmt.Printf("%s %s\n", color.RedString(out.Kind), out.Msg)
	} else {
		fmt.Printf("%s %s\n", out.Kind, out.Msg)
	}
	// A categorized failure is a successful evaluation, not a CLI error.
	return nil
}
