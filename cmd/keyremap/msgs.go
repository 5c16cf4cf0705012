package keyremap

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Remap keyboard keys and mouse buttons"
	MsgRunShort       = "Remap input using the mapping file"
	MsgListenShort    = "Print key and button events without remapping"
	MsgDumpShort      = "Print the compiled rules"
	MsgKeysShort      = "List every key and button name"
	MsgGenConfigShort = "Print or write an example mapping file"
	MsgVersionShort   = "Print version information"

	// Status messages
	MsgLoadingConfig   = "Loading config"
	MsgListeningHeader = "Listening for key mappings:"
	MsgMappingItem     = "- %s"
	MsgPressCtrlC      = "Press Ctrl+C to exit"
	MsgListenHint      = "Press keys or buttons, Ctrl+C to stop."
	MsgConfigWritten   = "Wrote example configuration to %s\n"
	MsgKeysHeader      = "Keys:"
	MsgButtonsHeader   = "Buttons:"

	// Error messages
	MsgErrNotTOML = "the example is TOML, refusing to write it to %s"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v DEBUG, -vv TRACE)"
	MsgFlagConfig  = "Mapping file (default: keyremap.toml next to the binary, then $XDG_CONFIG_HOME/keyremap/keyremap.toml)"
	MsgFlagLogFile = "Write logs to a file instead of the console (default path when given without a value)"
	MsgFlagDevice  = "Read only this input device (repeatable)"
	MsgFlagNoMice  = "Do not read pointer devices"
	MsgFlagShow    = "Print every decision to stdout"
	MsgFlagFormat  = "Output format: auto, term, text, json, yaml or toml"
	MsgFlagWrite   = "Write the example to the configuration path"
	MsgFlagForce   = "Overwrite an existing file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/listen-long.txt
	msgListenLongRaw string
	MsgListenLong    = strings.TrimSpace(msgListenLongRaw)

	//go:embed msgs/dump-long.txt
	msgDumpLongRaw string
	MsgDumpLong    = strings.TrimSpace(msgDumpLongRaw)

	//go:embed msgs/dump-example.txt
	msgDumpExampleRaw string
	MsgDumpExample    = strings.TrimRight(msgDumpExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
