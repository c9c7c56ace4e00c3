package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wallaceicy06/go-fixedschema"
	"github.com/wallaceicy06/go-fixedschema/internal/config"
	"github.com/wallaceicy06/go-fixedschema/internal/logger"
)

func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Validate a layout description and list its fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			schema, err := loadSchema(cfg)
			if err != nil {
				return err
			}
			logger.ComponentLogger("schema").Debugw("schema loaded",
				logger.FieldFile, cfg.Schema.Path,
				logger.FieldFields, schema.Len())
			return printSchema(cmd.OutOrStdout(), schema)
		},
	}
	addSchemaFlags(cmd)
	return cmd
}

func addSchemaFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("schema", "s", "", "layout description file")
	cmd.Flags().String("prefix", fixedwidth.DefaultPrefix, "prefix that marks field lines")
}

// loadSchema reads the layout description named by cfg.
func loadSchema(cfg *config.Config) (*fixedwidth.Schema, error) {
	if cfg.Schema.Path == "" {
		return nil, errors.New("no layout description given (use --schema or schema.path)")
	}
	f, err := os.Open(cfg.Schema.Path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open layout description")
	}
	defer f.Close()

	l := fixedwidth.Loader{Prefix: cfg.Schema.Prefix}
	s, err := l.LoadReader(f)
	if err != nil {
		return nil, errors.Wrap(err, cfg.Schema.Path)
	}
	return s, nil
}

var schemaHeader = []string{"NAME", "VARIABLE", "TYPE", "OFFSET", "LENGTH"}

// printSchema writes one row per field, columns aligned by display width.
func printSchema(w io.Writer, s *fixedwidth.Schema) error {
	rows := [][]string{schemaHeader}
	for _, f := range s.Fields() {
		rows = append(rows, []string{
			f.Name,
			f.Variable,
			f.Kind.String(),
			strconv.Itoa(f.Offset),
			strconv.Itoa(f.Length),
		})
	}

	widths := make([]int, len(schemaHeader))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i == len(row)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%d fields, line width %d\n", s.Len(), s.Width())

	_, err := io.WriteString(w, b.String())
	return err
}
