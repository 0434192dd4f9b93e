package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgallion1/mdfmtr/internal/formatter"
	"github.com/dgallion1/mdfmtr/internal/parser"
	"github.com/dgallion1/mdfmtr/internal/stats"
)

// Worker formats a single document job.
type Worker struct {
	opts    formatter.Options
	latency *stats.Latency
	log     *slog.Logger
}

func NewWorker(opts formatter.Options, latency *stats.Latency, log *slog.Logger) *Worker {
	return &Worker{opts: opts, latency: latency, log: log}
}

// Process formats the job's document and attaches its outline.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "cancelled")
		return
	}

	job.SetStatus(StatusFormatting, "formatting")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "formatting")
		return
	}

	data := job.FileData()
	start := time.Now()
	res, err := formatter.FormatValue(data, w.opts)
	if err != nil {
		log.Error("format failed", "error", err)
		job.AddError(fmt.Sprintf("format: %s", err))
		job.SetStatus(StatusFailed, "formatting")
		return
	}
	if w.latency != nil {
		w.latency.Record(time.Since(start), len(res.Lines))
	}

	job.SetStatus(StatusFormatting, "outlining")
	tree, err := p.Parse(strings.NewReader(res.FixedText), job.Filename)
	if err != nil {
		// The fixed text is still usable without an outline.
		log.Warn("outline failed", "error", err)
		job.AddError(fmt.Sprintf("outline: %s", err))
	}

	job.SetOutput(&Output{
		FixedText: res.FixedText,
		Errors:    res.Errors,
		Outline:   tree,
		Changed:   res.FixedText != string(data),
	})
	log.Info("formatted document",
		"lines", len(res.Lines),
		"diagnostics", res.Errors.Count(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	job.SetStatus(StatusCompleted, "done")
}
