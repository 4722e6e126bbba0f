package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	demandProfiler "github.com/mansarin/powertac-tools/pkg"
	"gopkg.in/cheggaaa/pb.v1"
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
	logGlobPath := flag.String("i",
		filepath.Join(wd, "logs/*.txt"),
		"Glob pattern matching the tariff transaction log files")
	dataDirPath := flag.String("o",
		filepath.Join(wd, "data"),
		"Directory path for the output *-prod-cons.data game files")
	baseOffset := flag.Int("t",
		0,
		"Base hour offset of timeslot zero within the week")

	// parse cli input flags
	flag.Parse()

	// resolve game log paths
	logPaths, err := filepath.Glob(*logGlobPath)
	if err != nil {
		log.Fatal(err)
	}

	// print filepaths used
	fmt.Printf("\tGame Logs: %d \n\tData Directory: %s \n",
		len(logPaths),
		*dataDirPath)

	// print status
	log.Println("Extracting Game Data...")

	// generate work channel
	logChan := make(chan string, len(logPaths))
	for _, logPath := range logPaths {
		logChan <- logPath
	}
	close(logChan)

	// generate error channel
	errs := make(chan error, len(logPaths))

	// set worker pool size
	limit := demandProfiler.MaxParallelism()

	// create extraction wait group
	var workerWaitGroup sync.WaitGroup

	// initialize progress bar
	bar := pb.StartNew(len(logPaths))
	bar.ShowTimeLeft = false

	// enter parallel extraction loop
	for w := 0; w < limit; w++ {

		// add extraction worker to wait group
		workerWaitGroup.Add(1)

		// launch extraction worker
		go demandProfiler.Worker(
			&workerWaitGroup,
			logChan,
			*dataDirPath,
			*baseOffset,
			errs,
			bar)
	}

	// wait for workers to drain the log channel
	workerWaitGroup.Wait()
	close(errs)

	// surface the first extraction error
	for err := range errs {
		log.Fatal(err)
	}

	// print status
	bar.FinishPrint("\tFinished Extraction")

	// stop timer and print to console
	elapsed := time.Since(start)
	log.Printf("Elapsed Time: %s", elapsed)
}
