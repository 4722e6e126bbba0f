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

	// set input filepath cli flags
	dataDirPath := flag.String("d",
		filepath.Join(wd, "data"),
		"Directory path containing the *-prod-cons.data game files")
	plotOutputPath := flag.String("p",
		filepath.Join(wd, "out/profile.png"),
		"Filepath for the output profile plot image")
	statsOutputPath := flag.String("o",
		filepath.Join(wd, "out/profile.csv"),
		"Filepath for the output profile stats csv file")

	// parse cli input flags
	flag.Parse()

	// print filepaths used
	if *dataDirPath == "" {
		flag.PrintDefaults()
		os.Exit(1)
	} else {
		fmt.Printf("\tData Directory: %s \n\tProfile Plot: %s \n\tProfile Stats: %s \n",
			*dataDirPath,
			filepath.Base(*plotOutputPath),
			filepath.Base(*statsOutputPath))
	}

	// print status
	log.Println("Collecting Data...")

	// allocate fresh profile store
	profile := demandProfiler.NewProfile()

	// aggregate game data into the profile
	if err := demandProfiler.CollectData(profile, *dataDirPath); err != nil {
		log.Fatal(err)
	}

	// print status
	log.Println("Summarizing Profile...")

	// reduce buckets to mean and population std
	stats := demandProfiler.SummarizeProfile(profile)

	// write profile stats to file
	if err := demandProfiler.WriteProfileStatsData(stats, *statsOutputPath); err != nil {
		log.Fatal(err)
	}

	// print status
	log.Println("Rendering Plot...")

	// render error bar plot to file
	if err := demandProfiler.PlotProfileStats(stats, *plotOutputPath); err != nil {
		log.Fatal(err)
	}

	// stop timer and print to console
	elapsed := time.Since(start)
	log.Printf("Elapsed Time: %s", elapsed)
}
