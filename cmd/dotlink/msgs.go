package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Keep your dotfiles in a repository, linked into your home directory"
	MsgRootLong = `dotlink stores your dotfiles in a plain directory you can put under
version control, and exposes them in your home directory as symbolic
links. It computes the sync status of every tracked file and applies
safe transitions to bring them in line.`
	MsgListShort       = "List all tracked dotfiles with their status"
	MsgCheckShort      = "List only dotfiles that are missing or unsynced"
	MsgSyncShort       = "Create and update links for all tracked dotfiles"
	MsgAddShort        = "Move file(s) into the repository and link them"
	MsgRemoveShort     = "Return file(s) to the home directory as plain files"
	MsgMoveShort       = "Relocate the repository directory"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgTopicsShort     = "Display additional documentation topics"

	// Status messages
	MsgSkipFormat      = "Skipping %q, %s\n"
	MsgNothingToReport = "All dotfiles in sync."
	MsgAvailableTopics = "Available topics:"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/dotlink/config.toml)"
	MsgFlagForce   = "Overwrite whatever currently exists in the home directory"
	MsgFlagReAdd   = "Re-import the home directory copy back into the repository"
)
