package boxes

import (
	"strconv"
	"strings"
)

const (
	DEFAULT_COUNTER_BASE = 1000
	DEFAULT_SCAN_BASE    = 100
	DEFAULT_SCAN_STEP    = 100
)

// Labeler decides the label of the next box. present holds the labels of all boxes
// that currently exist, including boxes that are about to be inserted
type Labeler interface {
	NextLabel(present []string) string
}

// CounterLabeler hands out base, base+1, base+2, ... regardless of what is present.
// Boxes introduced from elsewhere (e.g. a layout file) must be announced with Skip
type CounterLabeler struct {
	next int
}

func NewCounterLabeler(base int) *CounterLabeler {
	return &CounterLabeler{next: base}
}

// Skip moves the counter past the largest numeric label in present
func (l *CounterLabeler) Skip(present []string) {
	if max, ok := maxNumericLabel(present); ok && max >= l.next {
		l.next = max + 1
	}
}

func (l *CounterLabeler) NextLabel(_ []string) string {
	label := strconv.Itoa(l.next)
	l.next++
	return label
}

// ScanLabeler takes the largest numeric label present (at least base) and adds step.
// Labels that are not integers are ignored
type ScanLabeler struct {
	base int
	step int
}

func NewScanLabeler(base, step int) ScanLabeler {
	if step <= 0 {
		step = DEFAULT_SCAN_STEP
	}
	return ScanLabeler{base, step}
}

func (l ScanLabeler) NextLabel(present []string) string {
	max := l.base
	if n, ok := maxNumericLabel(present); ok && n > max {
		max = n
	}
	return strconv.Itoa(max + l.step)
}

// maxNumericLabel returns the largest label that is an integer
func maxNumericLabel(labels []string) (int, bool) {
	max, found := 0, false
	for _, label := range labels {
		n, err := strconv.Atoi(strings.TrimSpace(label))
		if err != nil {
			continue
		}
		if !found || n > max {
			max, found = n, true
		}
	}
	return max, found
}
