package chafengine

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// ReportFormat defines summary encoding.
type ReportFormat string

const (
	// ReportText is a human-readable summary.
	ReportText ReportFormat = "text"
	// ReportJSON is a single JSON object.
	ReportJSON ReportFormat = "json"
)

// ReportFormats maps format names to ReportFormat.
var ReportFormats = map[string]ReportFormat{
	string(ReportText): ReportText,
	string(ReportJSON): ReportJSON,
}

// ParseReportFormat parses report format name.
func ParseReportFormat(s string) (ReportFormat, error) {
	f, ok := ReportFormats[strings.ToLower(s)]
	if !ok {
		return "", errors.Errorf("unknown report format %q", s)
	}
	return f, nil
}

// WriteReport writes run summary.
func WriteReport(w io.Writer, format ReportFormat, s Stats) error {
	switch format {
	case ReportText, "":
		_, err := fmt.Fprintf(w, "Processed lines: %d\nExcluded lines: %d\nOutput lines: %d\n",
			s.Total, s.Excluded, s.Included,
		)
		return err
	case ReportJSON:
		e := jx.GetEncoder()
		defer jx.PutEncoder(e)

		e.ObjStart()
		e.FieldStart("processed")
		e.Int(s.Total)
		e.FieldStart("excluded")
		e.Int(s.Excluded)
		e.FieldStart("output")
		e.Int(s.Included)
		e.FieldStart("errors")
		e.Int(s.Errors)
		e.FieldStart("bytes")
		e.Int64(s.Bytes)
		e.ObjEnd()

		_, err := w.Write(append(e.Bytes(), '\n'))
		return err
	default:
		return errors.Errorf("unknown report format %q", format)
	}
}
