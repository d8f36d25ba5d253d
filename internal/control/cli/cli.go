// Package cli provides the command-line interface for propedit.
package cli

// CommandLineOpts are the options and commands of the command line, for
// `go-flags` to parse command line args into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	EditCommand    EditCommand    `command:"edit" description:"Edit an object's settings in the terminal UI" subcommands-optional:"true"`
	MenuCommand    MenuCommand    `command:"menu" description:"Print the menu an object's settings would be edited with" subcommands-optional:"true"`
	SchemaCommand  SchemaCommand  `command:"schema" description:"Print the registered attribute schemas" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" description:"Show the program version" subcommands-optional:"true"`
}

// Opts holds the parsed command line.
var Opts CommandLineOpts
