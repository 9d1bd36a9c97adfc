package leapsec

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

const fetchUserAgent = "gnsstime"

// The request is aborted when no data arrives for this long.
const fetchIdleTimeout = 30 * time.Second

/*
Fetch downloads a leap second table from url and installs it at dest.
The body is written to a temporary file next to dest, parsed to make
sure it is a usable table, and only then renamed into place, so a failed
or corrupt download never clobbers a working file.
*/
func Fetch(ctx context.Context, url, dest string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	timer := time.AfterFunc(time.Minute, cancel)
	defer timer.Stop()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	request.Header.Set("User-Agent", fetchUserAgent)

	client := http.Client{}

	response, err := client.Do(request)
	if err != nil {
		return errors.Wrap(err, "fetch leap second table")
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return errors.Errorf("invalid response status code %d", response.StatusCode)
	}

	fp, err := os.CreateTemp(filepath.Dir(dest), ".gpsutc-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}

	tmpPath := fp.Name()

	defer os.Remove(tmpPath)

	for {
		timer.Reset(fetchIdleTimeout)

		_, err = io.CopyN(fp, response.Body, 1024)

		if err == io.EOF {
			break
		} else if err != nil {
			fp.Close()
			return errors.Wrap(err, "read response body")
		}
	}

	if err := fp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}

	if _, err := Load(tmpPath); err != nil {
		return errors.Wrap(err, "downloaded table is not usable")
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		return errors.Wrap(err, "install leap second table")
	}

	return nil
}
