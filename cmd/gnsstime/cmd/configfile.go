package cmd

import (
	"os"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xunhou0222/gnsstime/internal/config"
)

const configTemplate = `[general]
# Log level
#
# debug=5, info=4, warning=3, error=2, fatal=1, panic=0
log_level={{ .General.LogLevel }}


# Leap second table settings.
[leap_seconds]
# Path of the GPSUTC.BSW file.
#
# When left empty, the file is resolved from the GPS_LEAP_SECOND_FILE
# environment variable, the user config directory or the bundled copy,
# in that order.
file="{{ .LeapSeconds.File }}"

# URL the update command downloads a fresh GPSUTC.BSW from.
update_url="{{ .LeapSeconds.UpdateURL }}"


# Output settings.
[output]
# Output JSON instead of the human-readable table by default.
json={{ .Output.JSON }}
`

var configCmd = &cobra.Command{
	Use:   "configfile",
	Short: "Print the gnsstime configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := template.Must(template.New("config").Parse(configTemplate))

		if err := t.Execute(os.Stdout, &config.C); err != nil {
			return errors.Wrap(err, "execute config template error")
		}

		return nil
	},
}
