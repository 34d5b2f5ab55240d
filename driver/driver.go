package driver

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/selection"
	"bikeshare/loader"
	"bikeshare/statistics/factory"
	"bikeshare/statistics/report"
	"bikeshare/utils"
)

const (
	driverType      = "interactive-driver"
	greeting        = "\nHello! Let's explore some US bikeshare data!"
	farewell        = "\nThanks for your time and have a nice day! :)"
	restartQuestion = "Would you like to restart? Enter 'yes' or 'no'."
)

// Config options of the Driver
// + Cities: cities the user can choose, lower case
// + Months: months the user can filter by, lower case
// + Days: week days the user can filter by, lower case
// + RawRowsWindow: amount of raw rows shown each time the user asks for more
// + ReportExportPath: CSV file where the statistics of each pass are appended. Empty disables the export
type Config struct {
	Cities           []string
	Months           []string
	Days             []string
	RawRowsWindow    int
	ReportExportPath string
}

// DatasetLoader builds the dataset of a selection
type DatasetLoader interface {
	Load(citySelection selection.Selection) (*loader.Dataset, error)
}

// Driver asks the user for a selection, shows the statistics of the selected trips and
// optionally the raw trips, until the user does not want to restart
type Driver struct {
	config        Config
	datasetLoader DatasetLoader
	calculators   []factory.Calculator
	prompter      *prompter
	output        io.Writer
}

func NewDriver(driverConfig Config, datasetLoader DatasetLoader, calculators []factory.Calculator, input io.Reader, output io.Writer) *Driver {
	return &Driver{
		config:        driverConfig,
		datasetLoader: datasetLoader,
		calculators:   calculators,
		prompter:      newPrompter(input, output),
		output:        output,
	}
}

func (d *Driver) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[driver: %s][method: %s][status: ERROR] %s: %s", driverType, method, message, err.Error())
	}
	return fmt.Sprintf("[driver: %s][method: %s][status: OK] %s", driverType, method, message)
}

// Run is the interactive loop. The flow of each iteration is:
// 1. Ask for city, month and day
// 2. Load the trips and show every statistic, a failure aborts only this iteration
// 3. Show raw trips while the user asks for them
// 4. Ask if the user wants to restart
// Run returns nil when the user is done or the input ends
func (d *Driver) Run() error {
	fmt.Fprintln(d.output, greeting)

	for {
		citySelection, err := d.AskSelection()
		if err != nil {
			return d.handleInputError(err)
		}

		dataset, err := d.RunPass(citySelection)
		if err != nil {
			fmt.Fprintf(d.output, "\nCould not analyze the trips (%s): %s\n", citySelection, err.Error())
		} else if err := d.showRawData(dataset); err != nil {
			return d.handleInputError(err)
		}

		restart, err := d.prompter.askYesNo(restartQuestion)
		if err != nil {
			return d.handleInputError(err)
		}

		if !restart {
			fmt.Fprintln(d.output, farewell)
			return nil
		}
	}
}

// RunOnce validates the selection and runs a single pass without asking anything
func (d *Driver) RunOnce(citySelection selection.Selection) error {
	citySelection = citySelection.Normalize()
	if err := d.ValidateSelection(citySelection); err != nil {
		return err
	}

	_, err := d.RunPass(citySelection)
	return err
}

// AskSelection asks for city, month and day until each answer is valid
func (d *Driver) AskSelection() (selection.Selection, error) {
	city, err := d.prompter.askOption(
		fmt.Sprintf("Would you like to see data for %s?", enumerate(d.config.Cities, " or ")),
		d.config.Cities,
	)
	if err != nil {
		return selection.Selection{}, err
	}

	month, err := d.prompter.askOption(
		fmt.Sprintf("Would you like to see data for %s, or for all months?", enumerate(d.config.Months, ", ")),
		append([]string{selection.AllFilter}, d.config.Months...),
	)
	if err != nil {
		return selection.Selection{}, err
	}

	day, err := d.prompter.askOption(
		fmt.Sprintf("Would you like to see data for %s, or for all days?", enumerate(d.config.Days, ", ")),
		append([]string{selection.AllFilter}, d.config.Days...),
	)
	if err != nil {
		return selection.Selection{}, err
	}

	fmt.Fprintf(d.output, "\n%s\n", report.Rule())
	return selection.NewSelection(city, month, day), nil
}

// ValidateSelection checks the selection against the configured cities, months and days
func (d *Driver) ValidateSelection(citySelection selection.Selection) error {
	if !utils.ContainsString(citySelection.City, d.config.Cities) {
		return fmt.Errorf("%w: unknown city '%s'", ErrInvalidSelection, citySelection.City)
	}

	if !citySelection.IsAllMonths() && !utils.ContainsString(citySelection.Month, d.config.Months) {
		return fmt.Errorf("%w: unknown month '%s'", ErrInvalidSelection, citySelection.Month)
	}

	if !citySelection.IsAllDays() && !utils.ContainsString(citySelection.Day, d.config.Days) {
		return fmt.Errorf("%w: unknown day '%s'", ErrInvalidSelection, citySelection.Day)
	}

	return nil
}

// RunPass loads the dataset and shows the report of every calculator. Reports are shown only
// if all of them were calculated, a failure shows nothing
func (d *Driver) RunPass(citySelection selection.Selection) (*loader.Dataset, error) {
	dataset, err := d.datasetLoader.Load(citySelection)
	if err != nil {
		log.Error(d.getLogMessage("RunPass", "error loading dataset", err))
		return nil, err
	}

	reports := make([]*report.Report, 0, len(d.calculators))
	for _, calculator := range d.calculators {
		calculatorReport, err := calculator.Calculate(dataset)
		if err != nil {
			log.Error(d.getLogMessage("RunPass", fmt.Sprintf("error calculating %s", calculator.GetType()), err))
			return nil, err
		}
		reports = append(reports, calculatorReport)
	}

	for _, calculatorReport := range reports {
		if err := calculatorReport.Render(d.output); err != nil {
			return nil, err
		}
	}

	if d.config.ReportExportPath != "" {
		if err := d.exportReports(citySelection, reports); err != nil {
			log.Error(d.getLogMessage("RunPass", "error exporting reports", err))
			fmt.Fprintf(d.output, "\nCould not export the statistics to %s: %s\n", d.config.ReportExportPath, err.Error())
		}
	}

	log.Info(d.getLogMessage("RunPass", fmt.Sprintf("%v trips analyzed for %s", dataset.Len(), citySelection), nil))
	return dataset, nil
}

// showRawData shows RawRowsWindow raw trips each time the user answers yes
func (d *Driver) showRawData(dataset *loader.Dataset) error {
	question := fmt.Sprintf("Would you like to see (the next) %v lines of raw data? Enter 'yes' or 'no'.", d.config.RawRowsWindow)
	offset := 0
	for {
		showMore, err := d.prompter.askYesNo(question)
		if err != nil {
			return err
		}
		if !showMore {
			return nil
		}

		rawData, rows := dataset.Window(offset, d.config.RawRowsWindow)
		if rows == 0 {
			fmt.Fprintln(d.output, "\nThere is no more raw data to display.")
			return nil
		}

		fmt.Fprint(d.output, rawData)
		offset += rows
	}
}

// exportReports appends the reports to the export file, the CSV header is written only if the file is empty
func (d *Driver) exportReports(citySelection selection.Selection, reports []*report.Report) error {
	exportFile, err := os.OpenFile(d.config.ReportExportPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	defer func(exportFile *os.File) {
		err := exportFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", d.config.ReportExportPath, err.Error())
		}
	}(exportFile)

	fileInfo, err := exportFile.Stat()
	if err != nil {
		return err
	}

	return report.ExportCSV(exportFile, citySelection, reports, fileInfo.Size() == 0)
}

func (d *Driver) handleInputError(err error) error {
	if errors.Is(err, ErrNoInput) {
		log.Info(d.getLogMessage("Run", "input closed, bye", nil))
		return nil
	}
	return err
}
