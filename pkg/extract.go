package demandProfiler

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// tariff transaction types carrying customer energy
const (
	TxProduce string = "PRODUCE" // customer production
	TxConsume string = "CONSUME" // customer consumption
)

// qtyPair type
type qtyPair struct {
	prod float64 // produced kWh within a timeslot
	cons float64 // consumed kWh within a timeslot
}

// ParseTariffTx function
func ParseTariffTx(
	line string) (*TariffTx, error) {

	// split line on the comma-space separator
	fields := strings.Split(line, fieldSep)
	if len(fields) != 3 {
		return nil, fmt.Errorf("malformed tariff tx, got %d fields, want 3: %q",
			len(fields), line)
	}

	// parse timeslot serial
	ts, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("bad timeslot: %w", err)
	}

	// parse transaction quantity
	kWh, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, fmt.Errorf("bad kWh: %w", err)
	}

	// return output
	return NewTariffTx(ts, fields[1], kWh), nil
}

// TimeslotClock function
func TimeslotClock(
	timeslot, base int) (int, int) {

	// timeslot serials advance one hour per slot from the base offset
	hour := base + timeslot
	dayOfWeek := (hour/dayHrs)%wkDays + 1
	hourOfDay := hour % dayHrs

	return dayOfWeek, hourOfDay
}

// ExtractGameData function
func ExtractGameData(
	logPath string,
	dataDir string,
	base int) error {

	// open tariff transaction log
	logFile, err := os.Open(logPath)
	if err != nil {
		return err
	}

	// close file on completion
	defer logFile.Close()

	// allocate per timeslot quantity accumulators
	slots := make(map[int]*qtyPair)

	// scan log line by line
	scanner := bufio.NewScanner(logFile)
	for scanner.Scan() {

		// parse transaction fields
		tx, err := ParseTariffTx(scanner.Text())
		if err != nil {
			return fmt.Errorf("%s: %w", logPath, err)
		}

		// sum customer quantities per timeslot, ignoring other tx types
		switch tx.TxType {
		case TxProduce, TxConsume:
			pair := slots[tx.Timeslot]
			if pair == nil {
				pair = &qtyPair{}
				slots[tx.Timeslot] = pair
			}
			if tx.TxType == TxProduce {
				pair.prod += tx.KWh
			} else {
				pair.cons += tx.KWh
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// order observed timeslots
	order := make([]int, 0, len(slots))
	for ts := range slots {
		order = append(order, ts)
	}
	sort.Ints(order)

	// generate output file name from the game log name
	game := strings.TrimSuffix(filepath.Base(logPath), filepath.Ext(logPath))
	dataPath := filepath.Join(dataDir, game+"-prod-cons.data")

	// open game data file
	dataFile, err := os.Create(dataPath)
	if err != nil {
		return err
	}

	// close file on completion
	defer dataFile.Close()

	// write one data row per observed timeslot
	writer := bufio.NewWriter(dataFile)
	for _, ts := range order {

		// derive clock position from timeslot serial
		dow, hod := TimeslotClock(ts, base)

		// write delimited data row
		pair := slots[ts]
		fmt.Fprintf(writer, "%d, %d, %d, %.3f, %.3f\n",
			ts, dow, hod, pair.prod, pair.cons)
	}

	return writer.Flush()
}

// WriteProfileStatsData function
func WriteProfileStatsData(
	stats *ProfileStats,
	statsPath string) error {

	// open stats output file
	statsFile, err := os.Create(statsPath)
	if err != nil {
		return err
	}

	// close file on completion
	defer statsFile.Close()

	// create new writer
	statsWriter := csv.NewWriter(statsFile)

	// flush writer
	defer statsWriter.Flush()

	// write header strings to stats file
	err = statsWriter.Write(
		[]string{"Hour_Of_Week",
			"Mean_Net_Demand_KWh",
			"Std_Net_Demand_KWh"})
	if err != nil {
		return err
	}

	// loop through and write bucket statistics
	for b := 0; b < hrs; b++ {

		// convert stat data to strings
		hourString := strconv.Itoa(b)
		meanString := strconv.FormatFloat(stats.Means.At(b, 0), 'f', 8, 64)
		stdString := strconv.FormatFloat(stats.Stds.At(b, 0), 'f', 8, 64)

		// write strings to stats file
		err := statsWriter.Write(
			[]string{hourString, meanString, stdString})
		if err != nil {
			return err
		}
	}

	// surface any deferred write error
	statsWriter.Flush()
	if err := statsWriter.Error(); err != nil {
		return err
	}

	// print status
	log.Println("\tProfile Stats Written")

	return nil
}
