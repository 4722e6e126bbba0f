package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	demandProfiler "github.com/mansarin/powertac-tools/pkg"
)

func main() {

	// start timer
	start := time.Now()

	// print status
	log.Println("Parsing Arguments...")

	// get current working directory
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	// set input cli flags
	dataDirPath := flag.String("o",
		filepath.Join(wd, "data"),
		"Directory path for the output *-prod-cons.data game files")
	gameCount := flag.Int("g",
		1,
		"Number of synthetic games to generate")
	dayCount := flag.Int("d",
		56,
		"Number of simulated days per game")
	seed := flag.Uint64("s",
		42,
		"Random seed for the sample distributions")

	// parse cli input flags
	flag.Parse()

	// print parameters used
	fmt.Printf("\tData Directory: %s \n\tGames: %d \n\tDays: %d \n",
		*dataDirPath,
		*gameCount,
		*dayCount)

	// print status
	log.Println("Generating Game Data...")

	// write one data file per synthetic game
	for g := 0; g < *gameCount; g++ {

		// generate game data file path
		dataPath := filepath.Join(*dataDirPath,
			fmt.Sprintf("sim%d-prod-cons.data", g+1))

		// write synthetic game data
		err := demandProfiler.GenerateGameData(dataPath, *dayCount, *seed+uint64(g))
		if err != nil {
			log.Fatal(err)
		}
	}

	// stop timer and print to console
	elapsed := time.Since(start)
	log.Printf("Elapsed Time: %s", elapsed)
}
