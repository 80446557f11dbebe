package nn

import "time"

// EpochStats summarizes one finished training epoch.
type EpochStats struct {
	Epoch    int           // 1-based epoch number
	Epochs   int           // Total epochs requested
	Batches  int           // Mini-batches processed in this epoch
	Examples int           // Size of the bound training set
	Duration time.Duration // Wall-clock time of the epoch
}

// Observer receives training progress.
type Observer interface {
	// EpochCompleted is called synchronously after every epoch.
	EpochCompleted(stats EpochStats)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(stats EpochStats)

// EpochCompleted calls f(stats).
func (f ObserverFunc) EpochCompleted(stats EpochStats) {
	f(stats)
}
