package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/domain/entities/selection"
	"bikeshare/driver"
	"bikeshare/loader"
	"bikeshare/statistics/factory"
	"bikeshare/utils"
)

const (
	logLevelEnv     = "LOG_LEVEL"
	defaultLogLevel = "warning"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}

func main() {
	city := flag.String("city", "", "City to analyze. If set, a single pass runs without asking anything.")
	month := flag.String("month", selection.AllFilter, "Month to filter by when -city is set, or 'all'.")
	day := flag.String("day", selection.AllFilter, "Day of week to filter by when -city is set, or 'all'.")
	flag.Parse()

	logLevel := os.Getenv(logLevelEnv)
	if logLevel == "" {
		logLevel = defaultLogLevel
	}
	if err := InitLogger(logLevel); err != nil {
		log.Fatalf("%s", err)
		return
	}

	analyzerConfig, err := config.LoadConfig(config.GetConfigFilepath())
	if err != nil {
		log.Fatalf("[caller: main][status: ERROR] error loading config: %s", err.Error())
		return
	}

	tripsLoader := loader.NewLoader(loader.Config{
		DataDir:          analyzerConfig.DataDir,
		Cities:           analyzerConfig.Cities,
		TimestampLayouts: analyzerConfig.TimestampLayouts,
	})

	analyzerDriver := driver.NewDriver(
		driver.Config{
			Cities:           analyzerConfig.GetCityNames(),
			Months:           analyzerConfig.Months,
			Days:             analyzerConfig.Days,
			RawRowsWindow:    analyzerConfig.RawRowsWindow,
			ReportExportPath: analyzerConfig.ReportExportPath,
		},
		tripsLoader,
		factory.NewCalculators(),
		os.Stdin,
		os.Stdout,
	)

	if *city != "" {
		err = analyzerDriver.RunOnce(selection.NewSelection(*city, *month, *day))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
			os.Exit(1)
		}
		return
	}

	signalChannel := utils.GetSignalChannel()
	done := make(chan error, 1)
	go func() {
		done <- analyzerDriver.Run()
	}()

	select {
	case sig := <-signalChannel:
		log.Infof("[caller: main][status: OK] signal %s received, bye", sig)
		fmt.Fprintln(os.Stdout)
	case err := <-done:
		if err != nil {
			log.Errorf("[caller: main][status: ERROR] %s", err.Error())
			os.Exit(1)
		}
	}
}
