package demandProfiler

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// GenerateGameData function
func GenerateGameData(
	dataPath string,
	days int,
	seed uint64) error {

	// open game data file
	dataFile, err := os.Create(dataPath)
	if err != nil {
		return err
	}

	// close file on completion
	defer dataFile.Close()

	// allocate seeded sample distributions
	src := rand.NewSource(seed)
	prodDist := distuv.Normal{Mu: 5.0, Sigma: 2.0, Src: src}
	consDist := distuv.Normal{Mu: 0.0, Sigma: 8.0, Src: src}

	// write one data row per simulated hour
	writer := bufio.NewWriter(dataFile)
	for ts := 0; ts < days*dayHrs; ts++ {

		// derive clock position from timeslot serial
		dow, hod := TimeslotClock(ts, 0)

		// production is non-negative
		prod := math.Max(0.0, prodDist.Rand())

		// consumption is non-positive with a diurnal peak shape
		diurnal := 40.0 + 25.0*math.Sin(2.0*math.Pi*float64(hod-6)/float64(dayHrs))
		cons := -math.Max(0.0, diurnal+consDist.Rand())

		// write delimited data row
		fmt.Fprintf(writer, "%d, %d, %d, %.3f, %.3f\n",
			ts, dow, hod, prod, cons)
	}

	return writer.Flush()
}
