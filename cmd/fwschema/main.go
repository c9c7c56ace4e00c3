// Command fwschema decodes fixed-width data files using a layout
// description loaded at runtime.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wallaceicy06/go-fixedschema/internal/config"
	"github.com/wallaceicy06/go-fixedschema/internal/logger"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fwschema",
		Short: "Decode fixed-width files with a runtime layout description",
		Long: `fwschema decodes fixed-width data files using a layout description.

A layout description has one line per field:

  Field1=string,firstName,0,10
  Field2=int,age,10,3

Each line gives the field type, the output name, a zero-based offset and a
length. Lines that do not start with the field prefix are ignored.

Examples:
  fwschema schema -s layout.properties            # validate and list fields
  fwschema decode -s layout.properties data.txt   # decode to JSON lines
  fwschema decode -s layout.properties -f yaml < data.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("config", "c", "", "config file (toml, yaml or json)")
	root.PersistentFlags().Bool("log-json", false, "log as JSON")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newDecodeCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// loadConfig reads configuration for cmd and initializes the logger from
// it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := logger.Initialize(logger.Options{
		JSON:   cfg.Log.JSON,
		Level:  cfg.Log.Level,
		Output: cmd.ErrOrStderr(),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	return cfg, nil
}

func main() {
	root := newRootCmd()
	err := root.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
