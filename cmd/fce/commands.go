package main

import (
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"

	"fce/config"
	"fce/render"
)

const renderHelp = `%s
SOURCE:
    path to JSON payload(s) to process, following forms are supported:
        path to a file: "[path_to_file]notes.json"
        path to a directory: "[path_to_directory]directory" - recursively process all payloads and archives under directory
        path to archive with path inside archive: "[path_to_archive]archive.zip[path_in_archive]" - process payloads under archive path

    Payload is either an object with "notes" array, an array of notes or a single note.
    Archives inside archives are not processed.

DESTINATION:
    directory for output files, names are derived from source or output_name_template
    if absent - STDOUT
`

const dumpConfigHelp = `%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`

func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:         "render",
			Usage:        "Renders notification payload(s) with resolved styles, links and actions",
			OnUsageError: usageErrorHandler,
			Action:       render.Run,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "to",
					Usage: "output `TYPE` overriding configuration (supported types: " + strings.Join(config.OutputFmtNames(), ", ") + ")"},
				&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "continue even if destination exists, overwrite files"},
			},
			ArgsUsage:          "SOURCE [DESTINATION]",
			CustomHelpTemplate: fmt.Sprintf(renderHelp, cli.CommandHelpTemplate),
		},
		{
			Name:  "dumpconfig",
			Usage: "Dumps either default or actual configuration (YAML)",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
			},
			OnUsageError:       usageErrorHandler,
			Action:             outputConfiguration,
			ArgsUsage:          "DESTINATION",
			CustomHelpTemplate: fmt.Sprintf(dumpConfigHelp, cli.CommandHelpTemplate),
		},
	}
}
