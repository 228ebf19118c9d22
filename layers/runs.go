package layers

import (
	"github.com/GeekHorse/Pinto/palette"
)

// IndexRun is a run of consecutive pixels with the same palette index.
type IndexRun struct {
	// Index is the palette index for this run, or [palette.Transparent].
	Index int8
	// Length gives the number of pixels in the run. A valid run is always at
	// least one pixel long.
	Length int
}

// IndexRunGrouper walks an index map a run at a time.
type IndexRunGrouper struct {
	indexes  palette.IndexMap
	position int
}

func NewIndexRunGrouper(indexes palette.IndexMap) *IndexRunGrouper {
	return &IndexRunGrouper{indexes: indexes}
}

// Next returns the next run of the map. The second return value is false once
// every pixel has been returned.
func (grouper *IndexRunGrouper) Next() (IndexRun, bool) {
	if grouper.position >= len(grouper.indexes) {
		return IndexRun{}, false
	}

	first := grouper.indexes[grouper.position]
	end := grouper.position + 1
	for end < len(grouper.indexes) && grouper.indexes[end] == first {
		end++
	}

	run := IndexRun{Index: first, Length: end - grouper.position}
	grouper.position = end
	return run, true
}

// Reset rewinds the grouper to the first pixel.
func (grouper *IndexRunGrouper) Reset() {
	grouper.position = 0
}

// GroupRuns returns every run of the map.
func GroupRuns(indexes palette.IndexMap) []IndexRun {
	var runs []IndexRun
	grouper := NewIndexRunGrouper(indexes)
	for run, ok := grouper.Next(); ok; run, ok = grouper.Next() {
		runs = append(runs, run)
	}
	return runs
}
