package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"

	pointscan "github.com/reoring/pointscan"
)

func main() {
	fs := flag.NewFlagSet("pointscan", flag.ExitOnError)
	var (
		cfgPath string
		typ     string
		dim     int
		jsonOut bool
	)
	fs.StringVar(&cfgPath, "config", "", "YAML manifest of scans; overrides positional files")
	fs.StringVar(&typ, "type", TypeInt, "component type for positional files (int|float)")
	fs.IntVar(&dim, "dim", 2, "point dimension for positional files")
	fs.BoolVar(&jsonOut, "json", false, "emit results as JSON")
	_ = fs.Parse(os.Args[1:])

	var specs []ScanSpec
	if cfgPath != "" {
		cfg, err := LoadConfig(cfgPath)
		if err != nil {
			fatalf("loading config: %v", err)
		}
		specs = cfg.Scans
	} else {
		for _, path := range fs.Args() {
			spec := ScanSpec{Path: path, Type: typ, Dim: dim}
			if err := spec.validate(); err != nil {
				fatalf("%s: %v", path, err)
			}
			specs = append(specs, spec)
		}
	}
	if len(specs) == 0 {
		usage()
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true}))

	// Every requested scan is attempted; per-file failures never fail the
	// process.
	results := make([]fileResult, 0, len(specs))
	for _, spec := range specs {
		results = append(results, runScan(logger, spec))
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			fatalf("encoding results: %v", err)
		}
		return
	}
	for _, res := range results {
		if res.Failed {
			continue
		}
		fmt.Printf("the point furthest from %s in %s is %s\n\n", res.zero, res.File, res.Max)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "pointscan CLI\n\nUsage:\n  pointscan [-type int|float] [-dim N] [-json] file...\n  pointscan -config scans.yaml [-json]\n\nNotes:\n  - Each scan reports the point furthest from the origin in its file.\n  - Malformed records are reported on stderr and skipped.")
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "pointscan: "+format+"\n", a...)
	os.Exit(1)
}

// fileResult is the per-file outcome, also the JSON output shape.
type fileResult struct {
	File    string       `json:"file"`
	Type    string       `json:"type"`
	Dim     int          `json:"dim"`
	Max     string       `json:"max,omitempty"`
	Failed  bool         `json:"failed,omitempty"`
	Reports []reportInfo `json:"reports,omitempty"`

	zero string
}

type reportInfo struct {
	Category string `json:"category"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Offset   int64  `json:"offset"`
}

func runScan(logger *slog.Logger, spec ScanSpec) fileResult {
	switch spec.Type {
	case TypeFloat:
		return scanTyped[float64](logger, spec)
	default:
		return scanTyped[int64](logger, spec)
	}
}

func scanTyped[T pointscan.Number](logger *slog.Logger, spec ScanSpec) fileResult {
	res := fileResult{
		File: spec.Path,
		Type: spec.Type,
		Dim:  spec.Dim,
		zero: pointscan.New[T](spec.Dim).String(),
	}
	sink := func(rep pointscan.Report) {
		res.Reports = append(res.Reports, reportInfo{
			Category: rep.Category,
			Kind:     rep.Kind.String(),
			Message:  rep.Message,
			Offset:   rep.Offset,
		})
		logger.Error(rep.Category,
			slog.String("reason", rep.Message),
			slog.String("file", spec.Path),
			slog.Int64("pos", rep.Offset))
	}
	max, err := pointscan.ScanFile[T](spec.Path, spec.Dim, pointscan.ScanOpt{Report: sink})
	if err != nil {
		res.Failed = true
		return res
	}
	res.Max = max.String()
	return res
}
