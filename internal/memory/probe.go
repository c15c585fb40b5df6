// Package memory samples process memory over a measured region.
package memory

import (
	"fmt"
	"os"
	"runtime/metrics"

	"github.com/shirou/gopsutil/v3/process"

	apperrors "ionbench/internal/errors"
)

const (
	ProbeHeap = "heap"
	ProbeRSS  = "rss"
)

// Probe reads a single memory figure in bytes.
type Probe interface {
	Name() string
	Sample() (uint64, error)
}

// heapObjectsMetric counts bytes in heap objects, reachable or not yet swept.
const heapObjectsMetric = "/memory/classes/heap/objects:bytes"

// HeapProbe reports bytes of heap objects. It reads runtime/metrics, which
// does not stop the world the way runtime.ReadMemStats does.
type HeapProbe struct {
	sample []metrics.Sample
}

func NewHeapProbe() *HeapProbe {
	return &HeapProbe{sample: []metrics.Sample{{Name: heapObjectsMetric}}}
}

func (p *HeapProbe) Name() string { return ProbeHeap }

func (p *HeapProbe) Sample() (uint64, error) {
	metrics.Read(p.sample)
	v := p.sample[0].Value
	if v.Kind() != metrics.KindUint64 {
		return 0, fmt.Errorf("runtime metric %s is unavailable", heapObjectsMetric)
	}
	return v.Uint64(), nil
}

// RSSProbe reports the resident set size of the current process.
type RSSProbe struct {
	proc *process.Process
}

func NewRSSProbe() (*RSSProbe, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("failed to open current process: %w", err)
	}
	return &RSSProbe{proc: proc}, nil
}

func (p *RSSProbe) Name() string { return ProbeRSS }

func (p *RSSProbe) Sample() (uint64, error) {
	info, err := p.proc.MemoryInfo()
	if err != nil {
		return 0, fmt.Errorf("failed to read memory info: %w", err)
	}
	return info.RSS, nil
}

// NewProbe returns the probe registered under name.
func NewProbe(name string) (Probe, error) {
	switch name {
	case ProbeHeap:
		return NewHeapProbe(), nil
	case ProbeRSS:
		return NewRSSProbe()
	default:
		return nil, apperrors.NewInvalidArgumentError("--memory-probe", "unknown probe %q (supported: %s, %s)", name, ProbeHeap, ProbeRSS)
	}
}
