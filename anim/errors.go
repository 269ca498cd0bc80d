package anim

import (
	"errors"
	"log"
)

// ErrUnsupportedArtifact indicates a series was requested for an artifact
// type that has no adapter.
var ErrUnsupportedArtifact = errors.New("unsupported artifact type")

// ErrLengthMismatch indicates a batched per-element assignment was given a
// value count that is neither 1 nor the series length.
var ErrLengthMismatch = errors.New("length mismatch")

// ErrSequenceExhausted indicates a finite sequence ran out of values before
// every element was served.
var ErrSequenceExhausted = errors.New("sequence exhausted")

// ErrUnknownEaser indicates an easer name with no registry entry.
var ErrUnknownEaser = errors.New("unknown easer")

// ErrUnknownCue indicates a script cue kind with no builder.
var ErrUnknownCue = errors.New("unknown cue kind")

// ErrIncompleteCue indicates a script cue missing a required value.
var ErrIncompleteCue = errors.New("incomplete cue")

// warnf reports recoverable conditions. Processing always continues with a
// best-effort substitute value after a warning.
var warnf = log.Printf
