// Package byterange computes the response plan for HTTP byte-range requests
// against a resource of known length.
package byterange

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const unit = "bytes="

// ErrUnsatisfiable is returned when a range cannot be served for the resource length.
var ErrUnsatisfiable = errors.New("range not satisfiable")

// Plan describes what a range-aware response must send.
type Plan struct {
	Status  int
	Start   int64
	End     int64
	Length  int64
	Total   int64
	Partial bool
}

// ContentRange returns the Content-Range header value for partial and unsatisfiable plans.
func (p Plan) ContentRange() string {
	if p.Status == http.StatusRequestedRangeNotSatisfiable {
		return fmt.Sprintf("bytes */%d", p.Total)
	}

	if !p.Partial {
		return ""
	}

	return fmt.Sprintf("bytes %d-%d/%d", p.Start, p.End, p.Total)
}

// Compute plans the response for header against a resource of total bytes.
// An empty header yields a full 200 response. Either bound may be omitted:
// the start defaults to 0 and the end to total-1, so "bytes=-100" means
// bytes 0 through 100 rather than a suffix range. Only the first range of a
// list is honored. An end beyond the resource is clamped; a start beyond it,
// an inverted range or non-numeric bounds produce a 416 plan and ErrUnsatisfiable.
func Compute(header string, total int64) (Plan, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return Plan{
			Status: http.StatusOK,
			Start:  0,
			End:    total - 1,
			Length: total,
			Total:  total,
		}, nil
	}

	unsatisfiable := Plan{Status: http.StatusRequestedRangeNotSatisfiable, Total: total}

	start, end, err := parse(header, total)
	if err != nil {
		return unsatisfiable, err
	}

	if end >= total {
		end = total - 1
	}

	if start < 0 || start >= total || start > end {
		return unsatisfiable, fmt.Errorf("%w: %d-%d of %d", ErrUnsatisfiable, start, end, total)
	}

	return Plan{
		Status:  http.StatusPartialContent,
		Start:   start,
		End:     end,
		Length:  end - start + 1,
		Total:   total,
		Partial: true,
	}, nil
}

func parse(header string, total int64) (int64, int64, error) {
	if !strings.HasPrefix(strings.ToLower(header), unit) {
		return 0, 0, fmt.Errorf("%w: unsupported unit in %q", ErrUnsatisfiable, header)
	}

	spec := header[len(unit):]
	if i := strings.IndexByte(spec, ','); i >= 0 {
		spec = spec[:i]
	}

	rawStart, rawEnd, found := strings.Cut(strings.TrimSpace(spec), "-")
	if !found {
		return 0, 0, fmt.Errorf("%w: malformed range %q", ErrUnsatisfiable, spec)
	}

	start, err := bound(rawStart, 0)
	if err != nil {
		return 0, 0, err
	}

	end, err := bound(rawEnd, total-1)
	if err != nil {
		return 0, 0, err
	}

	return start, end, nil
}

func bound(raw string, fallback int64) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid bound %q", ErrUnsatisfiable, raw)
	}

	return v, nil
}
