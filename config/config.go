package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"bikeshare/utils"
)

const (
	DefaultConfigFilepath = "./config/config.yaml"
	defaultRawRowsWindow  = 5
	configPathEnv         = "CONFIG_PATH"
	dataDirEnv            = "DATA_DIR"
	reportExportPathEnv   = "REPORT_EXPORT_PATH"
)

var ErrInvalidConfig = errors.New("invalid config")

var defaultTimestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// AnalyzerConfig contains everything the analyzer needs to run
// + DataDir: directory that contains the trips files of every city
// + Cities: city name to trips filename. Keys are lower case
// + Months: months the user can filter by, lower case
// + Days: week days the user can filter by, lower case
// + TimestampLayouts: layouts tried in order when parsing Start Time and End Time
// + RawRowsWindow: amount of raw rows displayed each time the user asks for more
// + ReportExportPath: if set, the statistics of each pass are appended as CSV to this file
type AnalyzerConfig struct {
	DataDir          string            `yaml:"data_dir"`
	Cities           map[string]string `yaml:"cities"`
	Months           []string          `yaml:"months"`
	Days             []string          `yaml:"days"`
	TimestampLayouts []string          `yaml:"timestamp_layouts"`
	RawRowsWindow    int               `yaml:"raw_rows_window"`
	ReportExportPath string            `yaml:"report_export_path"`
}

// GetConfigFilepath returns the path set in CONFIG_PATH or the default one
func GetConfigFilepath() string {
	if configPath := os.Getenv(configPathEnv); configPath != "" {
		return configPath
	}
	return DefaultConfigFilepath
}

func LoadConfig(configFilepath string) (*AnalyzerConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var analyzerConfig AnalyzerConfig
	err = yaml.Unmarshal(configFile, &analyzerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing analyzer config file: %s", err)
	}

	if dataDir := os.Getenv(dataDirEnv); dataDir != "" {
		analyzerConfig.DataDir = dataDir
	}
	if exportPath := os.Getenv(reportExportPathEnv); exportPath != "" {
		analyzerConfig.ReportExportPath = exportPath
	}

	analyzerConfig.setDefaults()
	if err := analyzerConfig.Validate(); err != nil {
		return nil, err
	}

	return &analyzerConfig, nil
}

// Validate checks that the config can be used to run an analysis
func (ac *AnalyzerConfig) Validate() error {
	if len(ac.Cities) == 0 {
		return fmt.Errorf("%w: at least one city is required", ErrInvalidConfig)
	}

	for city, filename := range ac.Cities {
		if strings.TrimSpace(filename) == "" {
			return fmt.Errorf("%w: city %s has no file", ErrInvalidConfig, city)
		}
	}

	if len(ac.Months) == 0 || len(ac.Days) == 0 {
		return fmt.Errorf("%w: months and days cannot be empty", ErrInvalidConfig)
	}

	if ac.RawRowsWindow <= 0 {
		return fmt.Errorf("%w: raw_rows_window must be greater than 0, got %v", ErrInvalidConfig, ac.RawRowsWindow)
	}

	return nil
}

// GetCityNames returns the configured cities sorted by name
func (ac *AnalyzerConfig) GetCityNames() []string {
	cities := make([]string, 0, len(ac.Cities))
	for city := range ac.Cities {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

func (ac *AnalyzerConfig) setDefaults() {
	cities := make(map[string]string, len(ac.Cities))
	for city, filename := range ac.Cities {
		cities[strings.ToLower(strings.TrimSpace(city))] = filename
	}
	ac.Cities = cities

	ac.Months = lowerAll(ac.Months)
	ac.Days = lowerAll(ac.Days)

	if len(ac.TimestampLayouts) == 0 {
		ac.TimestampLayouts = append([]string(nil), defaultTimestampLayouts...)
	}

	if ac.RawRowsWindow == 0 {
		ac.RawRowsWindow = defaultRawRowsWindow
	}
}

func lowerAll(values []string) []string {
	lowered := make([]string, 0, len(values))
	for _, value := range values {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(value)))
	}
	return lowered
}
