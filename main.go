package main

import (
	"context"
	"io"
	"os"

	"github.com/fakhrymubarak/weather-station/internal/config"
	"github.com/fakhrymubarak/weather-station/internal/presenter"
	"github.com/fakhrymubarak/weather-station/internal/service"
	"github.com/fakhrymubarak/weather-station/internal/session"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "weather-station",
		Short:        "Look up the current weather for a city and country code",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				config.SetConfigFile(configPath)
			}
			conf, err := config.Load()
			if err != nil {
				return err
			}
			log := config.GetLogger()
			log.Debugw("Configuration loaded",
				"api_url", conf.APIURL, "units", conf.Units, "timeout", conf.Timeout, "no_color", conf.NoColor)
			if conf.APIKey == "" {
				log.Warnw("No API key configured, set OPENWEATHERMAP_API_KEY or pass --api-key")
			}

			s := session.New(in, out, errOut, service.NewWeatherService(conf), presenter.New(out, conf.NoColor))
			if err := s.Run(cmd.Context()); err != nil {
				log.Debugw("Session terminated", "error", err)
				return err
			}
			return nil
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to a YAML config file")
	flags.String("api-key", "", "OpenWeatherMap API key (overrides OPENWEATHERMAP_API_KEY)")
	flags.String("units", "", "units requested from the API: standard, metric or imperial")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("log-level", "", "log level: debug, info, warn or error")

	_ = viper.BindPFlag("openweathermap.api_key", flags.Lookup("api-key"))
	_ = viper.BindPFlag("openweathermap.units", flags.Lookup("units"))
	_ = viper.BindPFlag("display.no_color", flags.Lookup("no-color"))
	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))

	return cmd
}
