package cmd

import (
	"fmt"
	"os"

	"github.com/gaurav-prasanna/scpdump/config"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "scpdump.yaml"

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := defaultConfigFile
		if len(args) == 1 {
			target = args[0]
		}

		if _, err := os.Stat(target); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Config already exists: %s\n", target)
			return nil
		}

		if err := os.WriteFile(target, config.DefaultConfigYAML, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created config: %s\n", target)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
