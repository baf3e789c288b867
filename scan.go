package pointscan

import "os"

// Report categories, matching the diagnostics the scan loop emits.
const (
	CategoryFirstRead     = "unable to read first element"
	CategoryIgnored       = "ignoring invalid element"
	CategoryUnrecoverable = "unable to recover"
)

// Report is one diagnostic event from a scan. Reports flow to the sink in
// ScanOpt, separate from the scan's returned result.
type Report struct {
	Category string
	Kind     Kind
	Message  string
	Offset   int64 // byte offset at the time of failure; -1 if unknown
}

// ScanOpt bundles scan options.
type ScanOpt struct {
	// Report receives one call per failure event. A nil sink drops reports.
	Report func(Report)
}

// Scan drives repeated parses of dim-dimensional points over the source and
// returns the maximum-magnitude point found.
//
// A failing first parse ends the scan with no result. After that, EmptyStream
// means the input is exhausted (normal termination), InvalidSymbol is reported
// and recovered from by discarding input through the next newline, and any
// other failure is reported and ends the scan. The parser signals, the scan
// loop decides: recovery policy lives here and nowhere else.
func Scan[T Number](src Source, dim int, opts ...ScanOpt) (Point[T], error) {
	var opt ScanOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	report := func(category string, err error) {
		if opt.Report == nil {
			return
		}
		if f, ok := AsFailure(err); ok {
			opt.Report(Report{Category: category, Kind: f.Kind, Message: f.Message, Offset: f.Offset})
			return
		}
		opt.Report(Report{Category: category, Kind: KindUnclassified, Message: err.Error(), Offset: src.Location()})
	}

	max, err := ParseFrom[T](src, dim)
	if err != nil {
		report(CategoryFirstRead, err)
		return New[T](dim), err
	}
	for {
		p, err := ParseFrom[T](src, dim)
		if err != nil {
			switch KindOf(err) {
			case KindEmptyStream:
				return max, nil // we must be done reading
			case KindInvalidSymbol:
				report(CategoryIgnored, err)
				if derr := src.DiscardLine(); derr != nil {
					report(CategoryUnrecoverable, derr)
					return New[T](dim), failUnclassified(derr, src.Location())
				}
				continue
			default:
				report(CategoryUnrecoverable, err)
				return New[T](dim), err
			}
		}
		if p.Greater(max) {
			max = p
		}
	}
}

// ScanFile opens path and scans it. The file is closed on every exit path. An
// open failure is reported through the sink like a failing first parse and
// returned as an unclassified failure.
func ScanFile[T Number](path string, dim int, opts ...ScanOpt) (Point[T], error) {
	f, err := os.Open(path)
	if err != nil {
		ferr := failUnclassified(err, -1)
		if len(opts) > 0 && opts[len(opts)-1].Report != nil {
			fe, _ := AsFailure(ferr)
			opts[len(opts)-1].Report(Report{Category: CategoryFirstRead, Kind: fe.Kind, Message: fe.Message, Offset: fe.Offset})
		}
		return New[T](dim), ferr
	}
	defer f.Close()
	return Scan[T](TextReader(f), dim, opts...)
}
