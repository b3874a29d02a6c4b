package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "aigopt",
	Short: "Technology-independent And-Inverter Graph logic optimizer",
	Long: `aigopt applies rewrite, resubstitution and refactoring passes to an
And-Inverter Graph, orchestrating the three local transforms node by
node until the network stops shrinking or a pass budget is reached.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := 1
		var ec *exitCodeErr
		if errors.As(err, &ec) {
			code = ec.code
		}
		os.Exit(code)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML); defaults are used when omitted")

	binName := BinName()
	rootCmd.Example = fmt.Sprintf(`  # Run one pass with the default priority order
  %s optimize -i network.txt -o optimized.txt

  # Run three passes, accepting zero-gain rewrites, with verbose output
  %s optimize -i network.txt -o optimized.txt --steps-max 3 --use-zeros-rwr -v

  # Greedy policy with a decision log and GNN export
  %s optimize -i network.txt -o optimized.txt --policy greedy \
    --decision-log decisions.txt --gnn-edges edges.txt --gnn-features features.txt`,
		binName, binName, binName)
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}
