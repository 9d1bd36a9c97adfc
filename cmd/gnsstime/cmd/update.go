package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xunhou0222/gnsstime/internal/config"
	"github.com/xunhou0222/gnsstime/internal/leapsec"
)

var updateURL string

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Download a fresh leap second table into the config directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		url := updateURL

		if url == "" {
			url = config.C.LeapSeconds.UpdateURL
		}

		dest, err := leapsec.ConfigPath()
		if err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"url":  url,
			"dest": dest,
		}).Info("updating leap second table")

		if err := leapsec.Fetch(cmd.Context(), url, dest); err != nil {
			return err
		}

		log.Info("leap second table updated")

		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateURL, "url", "", "source URL of the GPSUTC.BSW file (default: from configuration)")
}
