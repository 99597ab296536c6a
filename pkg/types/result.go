// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data types shared between the document operations,
// the task runner, the history journal, and the CLI surface.
package types

import (
	"fmt"
	"strings"
)

// ResultStatus tags the outcome of one operation on one input file
// (or of a whole merge batch). Exactly one tag per result.
type ResultStatus string

const (
	StatusSuccess   ResultStatus = "success"
	StatusFailure   ResultStatus = "failure"
	StatusCancelled ResultStatus = "cancelled"
)

// OperationResult records the outcome of a merge, split, or rasterize
// operation for a single input. A StatusSuccess result guarantees the
// referenced output path exists on disk at the time the record was produced.
type OperationResult struct {
	// Input is the source file the result refers to.
	Input string `json:"input" yaml:"input"`

	// Status is the outcome tag.
	Status ResultStatus `json:"status" yaml:"status"`

	// Path is the produced output file (or output directory for rasterize).
	// Set only on success.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Message carries the error text for failures, or an informational note
	// for cancellations.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// Pages is the number of pages involved: pages written for merge/split
	// outputs, pages rendered for rasterize. Zero when unknown.
	Pages int `json:"pages,omitempty" yaml:"pages,omitempty"`
}

// Success builds a success result for input with the produced output path.
func Success(input, path string, pages int) OperationResult {
	return OperationResult{Input: input, Status: StatusSuccess, Path: path, Pages: pages}
}

// Failure builds a failure result for input carrying the error message.
func Failure(input string, err error) OperationResult {
	return OperationResult{Input: input, Status: StatusFailure, Message: err.Error()}
}

// Failuref builds a failure result from a format string.
func Failuref(input, format string, args ...any) OperationResult {
	return OperationResult{Input: input, Status: StatusFailure, Message: fmt.Sprintf(format, args...)}
}

// Cancelled builds a cancelled result. Cancellation is informational, not an
// error: the message notes where processing stopped.
func Cancelled(input, message string) OperationResult {
	return OperationResult{Input: input, Status: StatusCancelled, Message: message}
}

// Summary aggregates a batch of results into counts plus the collected
// failure messages.
type Summary struct {
	Succeeded int      `json:"succeeded" yaml:"succeeded"`
	Failed    int      `json:"failed" yaml:"failed"`
	Cancelled int      `json:"cancelled" yaml:"cancelled"`
	Messages  []string `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// Total returns the total number of results summarized.
func (s Summary) Total() int {
	return s.Succeeded + s.Failed + s.Cancelled
}

// HasFailures reports whether any result in the batch failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// String renders the one-line aggregate outcome shown after every batch.
func (s Summary) String() string {
	line := fmt.Sprintf("%d succeeded, %d failed, %d cancelled (total: %d)",
		s.Succeeded, s.Failed, s.Cancelled, s.Total())
	if len(s.Messages) > 0 {
		line += "\n" + strings.Join(s.Messages, "\n")
	}
	return line
}

// Summarize folds a result sequence into a Summary. Failure messages are
// prefixed with the input file they refer to.
func Summarize(results []OperationResult) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case StatusSuccess:
			s.Succeeded++
		case StatusCancelled:
			s.Cancelled++
		case StatusFailure:
			s.Failed++
			if r.Message != "" {
				s.Messages = append(s.Messages, fmt.Sprintf("%s: %s", r.Input, r.Message))
			}
		}
	}
	return s
}
