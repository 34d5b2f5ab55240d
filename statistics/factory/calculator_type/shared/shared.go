package shared

import (
	"fmt"

	"bikeshare/domain/business/valuecounter"
	"bikeshare/domain/entities/trip"
	"bikeshare/loader"
	dataErrors "bikeshare/statistics/factory/calculator_type/errors"
)

// CheckDataset returns ErrEmptyDataset if there is nothing to calculate
func CheckDataset(calculatorType string, dataset *loader.Dataset) error {
	if dataset == nil || dataset.IsEmpty() {
		return fmt.Errorf("[calculator: %s] %w", calculatorType, dataErrors.ErrEmptyDataset)
	}
	return nil
}

// MostCommon returns the mode of the column. Missing values are not counted.
// less breaks ties between values with the same count, lexical order is used if it is nil
func MostCommon(dataset *loader.Dataset, column string, less valuecounter.LessFunc) (valuecounter.ValueCount, error) {
	values, err := dataset.Values(column)
	if err != nil {
		return valuecounter.ValueCount{}, fmt.Errorf("%w: %w", err, loader.ErrDataFormat)
	}
	return MostCommonValue(column, values, less)
}

// MostCommonValue returns the mode of values, skipping missing ones
func MostCommonValue(name string, values []string, less valuecounter.LessFunc) (valuecounter.ValueCount, error) {
	counter := valuecounter.NewValueCounterWithOrder(name, less)
	for _, value := range values {
		if trip.IsMissing(value) {
			continue
		}
		counter.UpdateCounter(value)
	}

	mode, err := counter.Mode()
	if err != nil {
		return valuecounter.ValueCount{}, fmt.Errorf("%w '%s': %w", dataErrors.ErrColumnWithoutValues, name, err)
	}
	return mode, nil
}
