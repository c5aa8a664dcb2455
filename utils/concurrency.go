package utils

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// SplitWork Runs do for every index in [0, workSize) across routines goroutines.
// routines <= 0 means NumCPU minus that amount, with a floor of 4.
// init is called once per routine, sequentially, before any work starts.
func SplitWork(routines int, workSize uint64, do func(workIndex uint64, routineIndex int) error, init func(routines, routineIndex int) error) error {
	if routines <= 0 {
		routines = max(runtime.NumCPU()+routines, 4)
	}

	if workSize < uint64(routines) {
		routines = int(workSize)
	}

	if init != nil {
		for routineIndex := 0; routineIndex < routines; routineIndex++ {
			if err := init(routines, routineIndex); err != nil {
				return err
			}
		}
	}

	var counter atomic.Uint64
	var eg errgroup.Group

	for routineIndex := 0; routineIndex < routines; routineIndex++ {
		eg.Go(func() error {
			for {
				workIndex := counter.Add(1)
				if workIndex > workSize {
					return nil
				}

				if err := do(workIndex-1, routineIndex); err != nil {
					return err
				}
			}
		})
	}
	return eg.Wait()
}
