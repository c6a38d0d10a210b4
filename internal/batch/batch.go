// Package batch fans the deterministic analyzer out over many documents.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-insight/internal/analyzer"
	"github.com/jonathan/resume-insight/internal/types"
)

// Document is one unit of work in a batch: a caller-assigned name plus
// the raw resume text to analyze.
type Document struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Result pairs a finished report with the document that produced it.
type Result struct {
	Index  int           `json:"index"`
	Name   string        `json:"name"`
	Report *types.Report `json:"report"`
}

// Options configures a batch run.
type Options struct {
	// Concurrency bounds the number of in-flight analyses. Zero or
	// negative means one worker per CPU.
	Concurrency int
	// OnResult, when set, is invoked from the worker goroutine as each
	// document finishes. Callbacks may arrive in any order; the returned
	// slice is always in input order.
	OnResult func(Result)
}

// Analyze runs the analyzer over every document and returns the reports
// in input order. Any failing document (empty input) fails the whole
// batch; the error names the offending document and wraps the analyzer
// error.
func Analyze(ctx context.Context, a *analyzer.Analyzer, docs []Document, req types.JobRequirements, opts *Options) ([]*types.Report, error) {
	if opts == nil {
		opts = &Options{}
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	reports := make([]*types.Report, len(docs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, doc := range docs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			report, err := a.Analyze(doc.Text, req)
			if err != nil {
				return fmt.Errorf("document %q: %w", documentName(doc, i), err)
			}

			// Each goroutine owns exactly one slot.
			reports[i] = report

			if opts.OnResult != nil {
				opts.OnResult(Result{Index: i, Name: documentName(doc, i), Report: report})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// documentName falls back to a positional name for unnamed documents.
func documentName(doc Document, index int) string {
	if doc.Name != "" {
		return doc.Name
	}
	return fmt.Sprintf("document-%d", index+1)
}
