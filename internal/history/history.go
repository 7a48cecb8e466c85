// Package history holds the server's performance history log: an append-only
// record of total portfolio value over time, fed by every portfolio-chart
// request and used to render the performance chart.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sample is one observation of total portfolio value.
type Sample struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	TotalValue float64   `json:"totalValue"`
}

// Log is a process-lifetime sequence of samples. It is safe for concurrent
// use. Samples are never deduplicated; with no bound configured the log
// grows for the life of the process, which is a known limitation inherited
// from the original simulator.
type Log struct {
	mu         sync.Mutex
	maxSamples int
	samples    []Sample
}

// NewLog creates a log. maxSamples bounds the number of retained samples,
// evicting oldest-first; zero or negative means unbounded.
func NewLog(maxSamples int) *Log {
	return &Log{maxSamples: maxSamples}
}

// Append records a new sample stamped with the current time and returns it.
func (l *Log) Append(totalValue float64) Sample {
	sample := Sample{
		ID:         uuid.New().String(),
		Timestamp:  time.Now(),
		TotalValue: totalValue,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.samples = append(l.samples, sample)
	if l.maxSamples > 0 && len(l.samples) > l.maxSamples {
		over := len(l.samples) - l.maxSamples
		l.samples = append(l.samples[:0:0], l.samples[over:]...)
	}
	return sample
}

// Samples returns a copy of all retained samples in append order.
func (l *Log) Samples() []Sample {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Sample, len(l.samples))
	copy(out, l.samples)
	return out
}

// Len reports the number of retained samples.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.samples)
}
