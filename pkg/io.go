package demandProfiler

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/cheggaaa/pb.v1"
)

// field separator used by the game data files
const fieldSep string = ", "

// field count per data row
const rowFields int = 5

// FloatMaybe function
func FloatMaybe(
	str string) (float64, error) {

	// empty fields default to zero with a diagnostic
	if str == "" {
		log.Println("failed to float, empty field")
		return 0.0, nil
	}

	// parse non-empty field strictly
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0.0, err
	}

	return val, nil
}

// BucketIndex function
func BucketIndex(
	dayOfWeek, hourOfDay int) (int, error) {

	// reject out of range days
	if dayOfWeek < 1 || dayOfWeek > wkDays {
		return 0, fmt.Errorf("day of week out of range [1,7]: %d", dayOfWeek)
	}

	// reject out of range hours
	if hourOfDay < 0 || hourOfDay >= dayHrs {
		return 0, fmt.Errorf("hour of day out of range [0,23]: %d", hourOfDay)
	}

	return (dayOfWeek-1)*dayHrs + hourOfDay, nil
}

// ParseRow function
func ParseRow(
	line string) (*DataRow, error) {

	// split line on the comma-space separator
	fields := strings.Split(line, fieldSep)
	if len(fields) != rowFields {
		return nil, fmt.Errorf("malformed row, got %d fields, want %d: %q",
			len(fields), rowFields, line)
	}

	// parse day of week
	dow, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("bad day of week: %w", err)
	}

	// parse hour of day
	hod, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("bad hour of day: %w", err)
	}

	// parse production tolerantly
	prod, err := FloatMaybe(fields[3])
	if err != nil {
		return nil, fmt.Errorf("bad production: %w", err)
	}

	// parse consumption tolerantly
	cons, err := FloatMaybe(fields[4])
	if err != nil {
		return nil, fmt.Errorf("bad consumption: %w", err)
	}

	// return output
	return &DataRow{
		Timeslot:    fields[0],
		DayOfWeek:   dow,
		HourOfDay:   hod,
		Production:  prod,
		Consumption: cons,
	}, nil
}

// ProcessFile function
func ProcessFile(
	profile *Profile,
	dataPath string) error {

	// open data file
	dataFile, err := os.Open(dataPath)
	if err != nil {
		return err
	}

	// close file on completion
	defer dataFile.Close()

	// scan file line by line
	scanner := bufio.NewScanner(dataFile)
	for scanner.Scan() {

		// parse row fields
		row, err := ParseRow(scanner.Text())
		if err != nil {
			return fmt.Errorf("%s: %w", dataPath, err)
		}

		// rows with non-negative consumption carry no net demand
		if row.Consumption >= 0.0 {
			continue
		}

		// compute bucket index
		bucket, err := BucketIndex(row.DayOfWeek, row.HourOfDay)
		if err != nil {
			return fmt.Errorf("%s: %w", dataPath, err)
		}

		// append net demand to bucket sequence
		net := -row.Production - row.Consumption
		profile.Buckets[bucket] = append(profile.Buckets[bucket], net)
	}

	return scanner.Err()
}

// CollectData function
func CollectData(
	profile *Profile,
	dataDir string) error {

	// count matching files on a first iterator pass
	iter := NewDataFileIter(dataDir)
	count := 0
	for _, ok := iter.Next(); ok; _, ok = iter.Next() {
		count++
	}
	if err := iter.Err(); err != nil {
		return err
	}

	// rewind for the processing pass
	iter.Reset()

	// allocate status bar
	bar := pb.StartNew(count)
	bar.ShowTimeLeft = false

	// process each discovered file sequentially
	for path, ok := iter.Next(); ok; path, ok = iter.Next() {

		// aggregate file contents into the profile
		if err := ProcessFile(profile, path); err != nil {
			return err
		}

		// increment status bar
		bar.Increment()
	}
	if err := iter.Err(); err != nil {
		return err
	}

	// close status bar
	bar.FinishPrint("\tGame Data Collected")

	return nil
}
