package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = ""

func newVersionCmd() *cobra.Command {
	var showModules bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the fwschema version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			bold := color.New(color.Bold)
			fmt.Fprintf(out, "%s %s\n", bold.Sprint("fwschema"), currentVersion())
			if !showModules {
				return
			}
			info, ok := debug.ReadBuildInfo()
			if !ok {
				fmt.Fprintln(out, "no build information")
				return
			}
			fmt.Fprintf(out, "go: %s\n", info.GoVersion)
			for _, dep := range info.Deps {
				fmt.Fprintf(out, "  %s %s\n", dep.Path, dep.Version)
			}
		},
	}
	cmd.Flags().BoolVar(&showModules, "modules", false, "list the modules compiled into the binary")
	return cmd
}

func currentVersion() string {
	if v := strings.TrimSpace(version); v != "" {
		return v
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
