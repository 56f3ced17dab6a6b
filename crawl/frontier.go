package crawl

// Frontier is a FIFO queue of URLs waiting to be visited. The same URL may
// be queued more than once; duplicates are dropped by the visited set when
// they are dequeued. It is not safe for concurrent use.
type Frontier struct {
	queue []string
	head  int
}

// NewFrontier returns a frontier seeded with the given URLs.
func NewFrontier(seed ...string) *Frontier {
	return &Frontier{queue: append([]string(nil), seed...)}
}

// Push appends URLs to the tail of the queue.
func (f *Frontier) Push(urls ...string) {
	f.queue = append(f.queue, urls...)
}

// Pop removes and returns the URL at the head of the queue.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	if f.head >= len(f.queue) {
		return "", false
	}
	url := f.queue[f.head]
	f.queue[f.head] = ""
	f.head++
	if f.head == len(f.queue) {
		f.queue = f.queue[:0]
		f.head = 0
	}
	return url, true
}

// Len returns the number of queued URLs.
func (f *Frontier) Len() int {
	return len(f.queue) - f.head
}

// visitedSet records URLs that were dequeued for processing.
type visitedSet struct {
	urls map[string]struct{}
}

func newVisitedSet(expected uint) *visitedSet {
	return &visitedSet{urls: make(map[string]struct{}, expected)}
}

// Add marks url as visited.
func (v *visitedSet) Add(url string) {
	v.urls[url] = struct{}{}
}

// Has reports whether url was visited.
func (v *visitedSet) Has(url string) bool {
	_, ok := v.urls[url]
	return ok
}

// Len returns the number of visited URLs.
func (v *visitedSet) Len() int {
	return len(v.urls)
}
