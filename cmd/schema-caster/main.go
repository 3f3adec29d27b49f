// Package main provides the CLI entrypoint for schema-caster.
//
// schema-caster converts table schemas between the Iceberg table format and
// Arrow:
//   - to-arrow prints or writes the Arrow schema of an Iceberg schema file
//   - from-arrow prints the Iceberg schema of an Arrow IPC file
//   - check reports whether a schema survives a conversion round trip
//   - kinds lists the primitive kinds and their Arrow types
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func addCommands(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "to-arrow schema-file",
		Short: "Convert an Iceberg schema file to an Arrow schema",
		Args:  cobra.ExactArgs(1),
		RunE:  toArrow}
	cmd.Flags().String("ipc", "", "write the schema as an Arrow IPC stream to this file")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "from-arrow arrow-file",
		Short: "Convert the schema of an Arrow IPC file to an Iceberg schema",
		Args:  cobra.ExactArgs(1),
		RunE:  fromArrow}
	cmd.Flags().String("format", "json", "output format, 'json' or 'yaml'")
	cmd.Flags().Bool("strict", false, "reject lossy mappings")
	cmd.Flags().StringSlice("allow-loss", nil, "losses allowed in strict mode")
	cmd.Flags().Int("schema-id", 0, "identifier of the produced schema")
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "check schema-file",
		Short: "Check that an Iceberg schema survives an Arrow round trip",
		Args:  cobra.ExactArgs(1),
		RunE:  check}
	root.AddCommand(cmd)

	cmd = &cobra.Command{
		Use:   "kinds",
		Short: "List Iceberg primitive kinds and their Arrow types",
		Args:  cobra.NoArgs,
		RunE:  kinds}
	root.AddCommand(cmd)
}

func newRootCommand() *cobra.Command {
	var root = &cobra.Command{
		Use:           "schema-caster",
		Short:         "Convert table schemas between Iceberg and Arrow",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "config file")
	root.PersistentFlags().String("log-level", "info", "log level, 'debug', 'info', 'warn' or 'error'")
	addCommands(root)

	return root
}

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fatal("%s", err)
	}

	os.Exit(0)
}
