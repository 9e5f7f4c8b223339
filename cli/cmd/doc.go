// Package cmd implements the envlayer subcommands.
//
// Every command that reads a stack file embeds [Source], which loads and
// resolves the stack. Results are written to the writer stored in the
// context with [WithOutput].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"

	// ConfigSection is the top-level key of the configuration file holding
	// flag values.
	ConfigSection = "config"
)
