package cmd

import (
	"bytes"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xunhou0222/gnsstime/internal/config"
)

var cfgFile string
var version string

var rootCmd = &cobra.Command{
	Use:   "gnsstime",
	Short: "GNSS time converter",
	Long: `gnsstime converts a point in time between civil and satellite
navigation representations: UTC, Beijing Time, Modified Julian Date,
day of year, time of day and GPS week/TOW/DOW.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	rootCmd.PersistentFlags().Int("log-level", 4, "debug=5, info=4, error=2, fatal=1, panic=0")

	viper.BindPFlag("general.log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	// default values
	viper.SetDefault("leap_seconds.update_url", "http://ftp.aiub.unibe.ch/BSWUSER54/CONFIG/GPSUTC.BSW")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute executes the root command.
func Execute(v string) {
	version = v

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func initConfig() {
	config.Version = version

	if cfgFile != "" {
		b, err := os.ReadFile(cfgFile)
		if err != nil {
			log.WithError(err).WithField("config", cfgFile).Fatal("error loading config file")
		}
		viper.SetConfigType("toml")
		if err := viper.ReadConfig(bytes.NewBuffer(b)); err != nil {
			log.WithError(err).WithField("config", cfgFile).Fatal("error loading config file")
		}
	} else {
		viper.SetConfigName("gnsstime")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/gnsstime")
		viper.AddConfigPath("/etc/gnsstime")
		if err := viper.ReadInConfig(); err != nil {
			switch err.(type) {
			case viper.ConfigFileNotFoundError:
				// no configuration file is fine, defaults apply
			default:
				log.WithError(err).Fatal("read configuration file error")
			}
		}
	}

	viper.SetEnvPrefix("GNSSTIME")
	viper.AutomaticEnv()

	if err := viper.Unmarshal(&config.C); err != nil {
		log.WithError(err).Fatal("unmarshal config error")
	}

	log.SetLevel(log.Level(uint8(config.C.General.LogLevel)))
}
