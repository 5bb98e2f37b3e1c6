// Package chafengine implements chaf query evaluation and line filtering.
package chafengine

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Options sets Run options.
type Options struct {
	// Report disables output and writes summary to Diagnostics instead.
	Report bool
	// ReportFormat sets summary format, defaults to ReportText.
	ReportFormat ReportFormat
	// Diagnostics is a summary writer, defaults to io.Discard.
	Diagnostics io.Writer
	// BufferSize sets read buffer size.
	BufferSize int

	// TracerProvider provides OpenTelemetry tracer for the run.
	TracerProvider trace.TracerProvider
	// MeterProvider provides OpenTelemetry meter for the run.
	MeterProvider metric.MeterProvider
}

func (o *Options) setDefaults() {
	if o.ReportFormat == "" {
		o.ReportFormat = ReportText
	}
	if o.Diagnostics == nil {
		o.Diagnostics = io.Discard
	}
	if o.BufferSize <= 0 {
		o.BufferSize = 64 * 1024
	}
	if o.TracerProvider == nil {
		o.TracerProvider = otel.GetTracerProvider()
	}
	if o.MeterProvider == nil {
		o.MeterProvider = otel.GetMeterProvider()
	}
}

// Run reads lines from src and writes lines kept by keep to sink.
//
// Lines are processed one by one. A trailing "\r\n" is replaced by "\n".
// If keep fails, the line is written anyway and the run continues.
// Read and write errors abort the run.
func Run(ctx context.Context, src io.Reader, sink io.Writer, keep KeepFunc, opts Options) (stats Stats, rerr error) {
	opts.setDefaults()

	ctx, span := opts.TracerProvider.Tracer("chafengine").Start(ctx, "chafengine.Run",
		trace.WithAttributes(
			attribute.Bool("chaf.report", opts.Report),
		),
	)
	defer func() {
		span.SetAttributes(
			attribute.Int("chaf.lines.processed", stats.Total),
			attribute.Int("chaf.lines.excluded", stats.Excluded),
			attribute.Int("chaf.lines.output", stats.Included),
			attribute.Int("chaf.lines.errors", stats.Errors),
		)
		if rerr != nil {
			span.RecordError(rerr)
			span.SetStatus(codes.Error, rerr.Error())
		}
		span.End()
	}()

	m, err := newRunMetrics(opts.MeterProvider)
	if err != nil {
		return stats, errors.Wrap(err, "create metrics")
	}
	defer m.Record(ctx, &stats)

	var (
		lg  = zctx.From(ctx)
		r   = bufio.NewReaderSize(src, opts.BufferSize)
		buf = make([]byte, 0, 4096)
	)
	for {
		line, readErr := readLine(r, buf[:0])
		buf = line
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return stats, errors.Wrap(readErr, "read line")
		}
		if len(line) == 0 {
			break
		}
		stats.Total++
		stats.Bytes += int64(len(line))

		if bytes.HasSuffix(line, []byte("\r\n")) {
			line = append(line[:len(line)-2], '\n')
		}

		ok, err := keep(line)
		switch {
		case err != nil:
			lg.Warn("Filter error, keeping line",
				zap.Int("line", stats.Total),
				zap.Error(err),
			)
			stats.Errors++
			ok = true
		case ok:
		default:
			stats.Excluded++
		}
		if ce := lg.Check(zap.DebugLevel, "Line processed"); ce != nil {
			ce.Write(
				zap.Int("line", stats.Total),
				zap.Bool("keep", ok),
			)
		}

		if ok {
			if !opts.Report {
				if _, err := sink.Write(line); err != nil {
					return stats, errors.Wrapf(err, "write line %d", stats.Total)
				}
			}
			stats.Included++
		}

		if readErr != nil {
			// Last line without a newline.
			break
		}
	}

	lg.Debug("Done", zap.Stringer("stats", stats))
	if opts.Report {
		if err := WriteReport(opts.Diagnostics, opts.ReportFormat, stats); err != nil {
			return stats, errors.Wrap(err, "write report")
		}
	}
	return stats, nil
}

// readLine appends the next line including "\n" to buf.
//
// Returns io.EOF with the last line if it is not terminated.
func readLine(r *bufio.Reader, buf []byte) ([]byte, error) {
	for {
		chunk, err := r.ReadSlice('\n')
		buf = append(buf, chunk...)
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return buf, err
	}
}
