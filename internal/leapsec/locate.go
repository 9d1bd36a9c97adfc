package leapsec

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// EnvVar overrides the leap second file location when set.
const EnvVar = "GPS_LEAP_SECOND_FILE"

const (
	fileName      = "GPSUTC.BSW"
	configSubDir  = "gnsstime"
	tempFilePerms = 0o644
)

//go:embed GPSUTC.BSW
var bundled []byte

/*
Locate resolves the path of the leap second file, in order of
precedence:

 1. the file named by the GPS_LEAP_SECOND_FILE environment variable, if
    it exists;
 2. GPSUTC.BSW in the user config directory (~/.config/gnsstime on
    Linux), seeded from the bundled copy on first use so that later
    updates have a stable home;
 3. the bundled copy, materialized into the temp directory when the
    config directory cannot be written.

Converters never call Locate themselves; the table path is resolved once
at the boundary and the resulting Table is passed in explicitly.
*/
func Locate() (string, error) {
	if p := os.Getenv(EnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			if abs, err := filepath.Abs(p); err == nil {
				return abs, nil
			}

			return p, nil
		}
	}

	if dir, err := os.UserConfigDir(); err == nil {
		cfg := filepath.Join(dir, configSubDir, fileName)

		if _, err := os.Stat(cfg); err == nil {
			return cfg, nil
		}

		// copy-on-first-use
		if err := os.MkdirAll(filepath.Dir(cfg), 0o755); err == nil {
			if err := os.WriteFile(cfg, bundled, tempFilePerms); err == nil {
				return cfg, nil
			}
		}
	}

	tmp := filepath.Join(os.TempDir(), fileName)

	if err := os.WriteFile(tmp, bundled, tempFilePerms); err != nil {
		return "", errors.Wrapf(ErrSourceUnavailable, "write bundled table: %v", err)
	}

	return tmp, nil
}

// ConfigPath returns the canonical location of the leap second file in
// the user config directory, creating the directory if needed. Used by
// the update command as the install destination.
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve user config dir")
	}

	if err := os.MkdirAll(filepath.Join(dir, configSubDir), 0o755); err != nil {
		return "", errors.Wrap(err, "create config dir")
	}

	return filepath.Join(dir, configSubDir, fileName), nil
}
