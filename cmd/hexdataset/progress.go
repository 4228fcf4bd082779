package main

import (
	"fmt"
	"time"
)

// ProgressUpdate provides a real-time record of progress
type ProgressUpdate struct {
	startTime     time.Time
	lastUpdate    time.Time
	iteration     int
	lastIteration int
	description   string
}

// NewProgressUpdate starts a progress update
func NewProgressUpdate(description string) *ProgressUpdate {
	return &ProgressUpdate{
		startTime:   time.Now(),
		lastUpdate:  time.Now(),
		description: description,
	}
}

// Update increments the progress update if enough time has gone by
func (pu *ProgressUpdate) Update(n int) {
	pu.iteration += n
	if time.Since(pu.lastUpdate).Seconds() > 0.5 {
		fmt.Printf(
			"%s: %d games\t%.0f games/s\t\r",
			pu.description,
			pu.iteration,
			float64(pu.iteration-pu.lastIteration)/time.Since(pu.lastUpdate).Seconds(),
		)
		pu.lastUpdate = time.Now()
		pu.lastIteration = pu.iteration
	}
}

// Close ends the progress bar by printing a new line
func (pu *ProgressUpdate) Close() {
	fmt.Printf(
		"%s: %d games\t%.0f games/s\t\r\n",
		pu.description,
		pu.iteration,
		float64(pu.iteration)/time.Since(pu.startTime).Seconds(),
	)
}
