package pointscan

// Package pointscan provides:
//
// - A fixed-dimension numeric Point with Euclidean distance and
//   ordering-by-magnitude semantics
// - A strict stream parser for parenthesized point records with a closed,
//   classified failure model (EmptyStream / InvalidSymbol / Unclassified)
// - A scan loop that tracks the maximum-magnitude point across a stream and
//   recovers from malformed records by resynchronizing at the next newline
//
// Design policy:
// - Keep only public APIs in the root package; put the lexer under internal/.
// - Place the CLI under cmd/pointscan.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  p, err := pointscan.ParseFrom[int64](pointscan.TextBytes(data), 2)
//  max, err := pointscan.Scan[int64](pointscan.TextReader(r), 2, pointscan.ScanOpt{Report: sink})
//  max, err := pointscan.ScanFile[float64]("input.txt", 3)
//
