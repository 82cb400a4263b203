package mailsift

import (
	"context"
	"fmt"

	"github.com/optimode/mailsift/types"
)

// ChunkError records one failed chunk of a batch. Failed chunks are
// skipped, never retried; their addresses are absent from the results.
type ChunkError struct {
	Chunk int   `json:"chunk"` // zero-based chunk index
	Size  int   `json:"size"`  // addresses in the chunk
	Err   error `json:"-"`
}

func (e ChunkError) Error() string {
	return fmt.Sprintf("chunk %d (%d addresses): %v", e.Chunk, e.Size, e.Err)
}

func (e ChunkError) Unwrap() error { return e.Err }

// Report is the outcome of one batch run. Results is shorter than the
// input exactly when FailedChunks is non-empty, so callers always see
// why the list shrank.
type Report struct {
	Results      []types.Result `json:"results"`
	Stats        types.Stats    `json:"stats"`
	FailedChunks []ChunkError   `json:"failed_chunks,omitempty"`
}

// VerifyList runs the batch pipeline over an ordered list of unique
// addresses: consecutive chunks of at most ChunkSize, each chunk verified
// concurrently, chunk n+1 never starting before chunk n finishes. Within
// a chunk results land positionally, so output order matches input order
// regardless of completion order.
//
// A failing chunk is recorded in Report.FailedChunks and the pipeline
// continues with the next chunk. Cancellation is checked between chunks
// and after every chunk attempt, so a context that expires mid-chunk is
// never misfiled as a chunk failure; on cancellation the accumulated
// Report is returned together with the context error.
func (v *Verifier) VerifyList(ctx context.Context, emails []string, opts ...BatchOptions) (Report, error) {
	if v.err != nil {
		return Report{}, v.err
	}

	o := BatchOptions{}
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.ChunkSize < 0 {
		return Report{}, ErrInvalidChunkSize
	}
	if o.ChunkSize == 0 {
		o.ChunkSize = DefaultChunkSize
	}
	verifyChunk := o.ChunkFunc
	if verifyChunk == nil {
		verifyChunk = v.VerifyAll
	}

	total := len(emails)
	var report Report

	for start, chunk := 0, 0; start < total; start, chunk = start+o.ChunkSize, chunk+1 {
		if err := ctx.Err(); err != nil {
			report.Stats = types.Tally(report.Results)
			return report, err
		}

		end := min(start+o.ChunkSize, total)
		results, err := verifyChunk(ctx, emails[start:end])
		if err != nil {
			// cancellation mid-chunk ends the batch, it is not a chunk failure
			if ctxErr := ctx.Err(); ctxErr != nil {
				report.Stats = types.Tally(report.Results)
				return report, ctxErr
			}
			report.FailedChunks = append(report.FailedChunks, ChunkError{
				Chunk: chunk,
				Size:  end - start,
				Err:   err,
			})
			continue
		}

		report.Results = append(report.Results, results...)
		if o.Progress != nil {
			o.Progress(len(report.Results), total)
		}
	}

	report.Stats = types.Tally(report.Results)
	return report, nil
}
