//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

const (
	// TruncationLimit is the character count from which a value is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of decimal digits shown at each end
	// of a truncated value.
	DisplayEdges = 25
	// HexDisplayEdges specifies the number of hex or binary characters
	// shown at each end of a truncated value.
	HexDisplayEdges = 40
	// SpinnerRefreshRate defines the refresh frequency of the spinner.
	SpinnerRefreshRate = 100 * time.Millisecond
)

// Spinner abstracts a terminal spinner so that the evaluation loop can be
// tested without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts briandowns/spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, spinner.WithWriter(out))
	return &realSpinner{s}
}

// RunWithSpinner runs fn while a spinner labelled with label turns on out.
// With enabled false, fn runs silently.
func RunWithSpinner(out io.Writer, enabled bool, label string, fn func() error) error {
	if !enabled {
		return fn()
	}
	s := newSpinner(out)
	s.UpdateSuffix(" " + label)
	s.Start()
	defer s.Stop()
	return fn()
}
