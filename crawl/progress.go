package crawl

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressVisited
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type ProgressType

	// Iteration is the 1-based loop iteration that dequeued URL. Total is
	// the page budget.
	Iteration int
	Total     int

	// Pages is the number of pages recorded so far.
	Pages int

	URL    string
	Reason string // why a URL was skipped
	Err    error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)
