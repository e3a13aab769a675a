package deck

import "github.com/abhisek/flashdeck/internal/loader"

// loadRequestMsg is sent when a filter is chosen.
type loadRequestMsg struct {
	Sources []string
}

// loadDoneMsg carries the outcome of a Data Loader batch.
type loadDoneMsg struct {
	Sources []string
	Result  loader.Result
	Err     error
}
