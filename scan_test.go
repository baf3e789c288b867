package pointscan_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	pointscan "github.com/reoring/pointscan"
)

func TestScan_MaxOfValidStream(t *testing.T) {
	var reports []pointscan.Report
	src := pointscan.TextBytes([]byte("( 1 2 ) ( -5 9 ) ( 3 3 )"))
	max, err := pointscan.Scan[int64](src, 2, pointscan.ScanOpt{Report: func(r pointscan.Report) {
		reports = append(reports, r)
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !max.Equal(pointscan.Make[int64](-5, 9)) {
		t.Fatalf("want ( -5 9 ), got %s", max)
	}
	if len(reports) != 0 {
		t.Fatalf("want no reports, got %d: %v", len(reports), reports)
	}
}

func TestScan_RecoversFromInvalidRecord(t *testing.T) {
	var reports []pointscan.Report
	src := pointscan.TextBytes([]byte("( 1 )\n( x )\n( 4 )"))
	max, err := pointscan.Scan[int64](src, 1, pointscan.ScanOpt{Report: func(r pointscan.Report) {
		reports = append(reports, r)
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !max.Equal(pointscan.Make[int64](4)) {
		t.Fatalf("want ( 4 ), got %s", max)
	}
	if len(reports) != 1 {
		t.Fatalf("want 1 report, got %d: %v", len(reports), reports)
	}
	rep := reports[0]
	if rep.Category != pointscan.CategoryIgnored {
		t.Fatalf("want category %q, got %q", pointscan.CategoryIgnored, rep.Category)
	}
	if rep.Kind != pointscan.KindInvalidSymbol || rep.Message != "unable to read value" {
		t.Fatalf("want invalid_symbol/unable to read value, got %s/%q", rep.Kind, rep.Message)
	}
	if rep.Offset != 8 {
		t.Fatalf("want offset 8 (the 'x'), got %d", rep.Offset)
	}
}

func TestScan_ResyncSkipsRestOfLine(t *testing.T) {
	// The valid-looking ( 9 ) shares a line with the malformed record and must
	// be discarded; the next accepted record is the first one after the
	// newline.
	var reports []pointscan.Report
	src := pointscan.TextBytes([]byte("( 1 )\n( x ) ( 9 )\n( 2 )"))
	max, err := pointscan.Scan[int64](src, 1, pointscan.ScanOpt{Report: func(r pointscan.Report) {
		reports = append(reports, r)
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !max.Equal(pointscan.Make[int64](2)) {
		t.Fatalf("want ( 2 ), got %s", max)
	}
	if len(reports) != 1 {
		t.Fatalf("want 1 report, got %d: %v", len(reports), reports)
	}
}

func TestScan_EmptyInput_FirstParseFails(t *testing.T) {
	var reports []pointscan.Report
	_, err := pointscan.Scan[int64](pointscan.TextBytes(nil), 1, pointscan.ScanOpt{Report: func(r pointscan.Report) {
		reports = append(reports, r)
	}})
	if pointscan.KindOf(err) != pointscan.KindEmptyStream {
		t.Fatalf("want empty_stream, got %v", err)
	}
	if len(reports) != 1 || reports[0].Category != pointscan.CategoryFirstRead {
		t.Fatalf("want one %q report, got %v", pointscan.CategoryFirstRead, reports)
	}
}

func TestScan_FirstParseInvalidIsTerminal(t *testing.T) {
	// A failing first parse ends the scan even though later records are fine.
	var reports []pointscan.Report
	_, err := pointscan.Scan[int64](pointscan.TextBytes([]byte("x\n( 1 )")), 1, pointscan.ScanOpt{Report: func(r pointscan.Report) {
		reports = append(reports, r)
	}})
	if pointscan.KindOf(err) != pointscan.KindInvalidSymbol {
		t.Fatalf("want invalid_symbol, got %v", err)
	}
	if len(reports) != 1 || reports[0].Category != pointscan.CategoryFirstRead {
		t.Fatalf("want one %q report, got %v", pointscan.CategoryFirstRead, reports)
	}
}

// faultySource serves tokens from a real source, then fails with a fixed
// error that is neither io.EOF nor a classified Failure.
type faultySource struct {
	inner pointscan.Source
	allow int
	calls int
	err   error
}

func (s *faultySource) NextToken() (pointscan.Token, error) {
	if s.calls >= s.allow {
		return pointscan.Token{}, s.err
	}
	s.calls++
	return s.inner.NextToken()
}

func (s *faultySource) DiscardLine() error { return s.inner.DiscardLine() }
func (s *faultySource) Location() int64    { return s.inner.Location() }

func TestScan_UnclassifiedFailureStopsScan(t *testing.T) {
	cause := errors.New("disk on fire")
	src := &faultySource{
		inner: pointscan.TextBytes([]byte("( 1 ) ( 2 )")),
		allow: 3, // exactly the first record's tokens
		err:   cause,
	}
	var reports []pointscan.Report
	_, err := pointscan.Scan[int64](src, 1, pointscan.ScanOpt{Report: func(r pointscan.Report) {
		reports = append(reports, r)
	}})
	if err == nil {
		t.Fatalf("expected error")
	}
	if pointscan.KindOf(err) != pointscan.KindUnclassified {
		t.Fatalf("want unclassified, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("want wrapped cause, got %v", err)
	}
	if len(reports) != 1 || reports[0].Category != pointscan.CategoryUnrecoverable {
		t.Fatalf("want one %q report, got %v", pointscan.CategoryUnrecoverable, reports)
	}
}

func TestScanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input-int-2.txt")
	if err := os.WriteFile(path, []byte("( 1 2 )\n( -5 9 )\n( 3 3 )\n"), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	max, err := pointscan.ScanFile[int64](path, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !max.Equal(pointscan.Make[int64](-5, 9)) {
		t.Fatalf("want ( -5 9 ), got %s", max)
	}
}

func TestScanFile_MissingFile(t *testing.T) {
	var reports []pointscan.Report
	_, err := pointscan.ScanFile[int64](filepath.Join(t.TempDir(), "nope.txt"), 1, pointscan.ScanOpt{Report: func(r pointscan.Report) {
		reports = append(reports, r)
	}})
	if pointscan.KindOf(err) != pointscan.KindUnclassified {
		t.Fatalf("want unclassified, got %v", err)
	}
	if len(reports) != 1 || reports[0].Category != pointscan.CategoryFirstRead {
		t.Fatalf("want one %q report, got %v", pointscan.CategoryFirstRead, reports)
	}
}
