package demandProfiler

import (
	"sync"

	"gopkg.in/cheggaaa/pb.v1"
)

// Worker function
func Worker(
	workerWaitGroup *sync.WaitGroup,
	logChan chan string,
	dataDir string,
	base int,
	errs chan error,
	bar *pb.ProgressBar) {

	// defer waitgroup closure
	defer workerWaitGroup.Done()

	// pull game logs from the work channel
	for logPath := range logChan {

		// extract game data from the log
		if err := ExtractGameData(logPath, dataDir, base); err != nil {
			errs <- err
			return
		}

		// increment bar
		bar.Increment()
	}

	return
}
