package memory

import (
	"sync"
	"time"
)

// DefaultInterval is the sampling period used when none is configured.
const DefaultInterval = 5 * time.Millisecond

// Stats is the outcome of one sampling session.
type Stats struct {
	Baseline uint64 // first sample, taken by Start
	Peak     uint64 // highest sample seen, including Baseline and the final sample
	Samples  int
}

// Growth returns how far the peak rose above the baseline.
func (s Stats) Growth() uint64 {
	if s.Peak < s.Baseline {
		return 0
	}
	return s.Peak - s.Baseline
}

// Sampler polls a Probe on a fixed interval between Start and Stop and keeps the maximum.
// A Sampler is single use.
type Sampler struct {
	probe    Probe
	interval time.Duration

	mu    sync.Mutex
	stats Stats
	err   error

	stop chan struct{}
	done chan struct{}
}

// NewSampler creates a sampler. A non-positive interval selects DefaultInterval.
func NewSampler(probe Probe, interval time.Duration) *Sampler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sampler{
		probe:    probe,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start records the baseline and begins background sampling.
func (s *Sampler) Start() {
	v, err := s.probe.Sample()
	s.mu.Lock()
	s.stats = Stats{Baseline: v, Peak: v, Samples: 1}
	s.err = err
	s.mu.Unlock()

	go s.loop()
}

func (s *Sampler) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.record()
		}
	}
}

func (s *Sampler) record() {
	v, err := s.probe.Sample()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if s.err == nil {
			s.err = err
		}
		return
	}
	s.stats.Samples++
	if v > s.stats.Peak {
		s.stats.Peak = v
	}
}

// Stop halts sampling, takes one final sample and returns the session stats.
// The first probe error encountered, if any, is returned alongside the stats.
func (s *Sampler) Stop() (Stats, error) {
	close(s.stop)
	<-s.done
	s.record()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats, s.err
}
