package pathworld

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

var (
	// ErrMissingHeader is returned for an input with no lines at all.
	ErrMissingHeader = errors.New("csv has no header line")
	// ErrMalformedRow is returned for a data line with the wrong field count,
	// a non-numeric field, or no content.
	ErrMalformedRow = errors.New("malformed csv row")
)

func fieldFloat64(field string, line int) (float64, error) {
	val, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %q is not a number", ErrMalformedRow, line, field)
	}
	return val, nil
}

// IngestRow converts one data record into a Point.
func IngestRow(record []string, shape RowShape, line int) (Point, error) {
	if len(record) != int(shape) {
		return Point{}, fmt.Errorf("%w: line %d: want %d fields, got %d", ErrMalformedRow, line, shape, len(record))
	}

	vals := make([]float64, len(record))
	for i, field := range record {
		v, err := fieldFloat64(field, line)
		if err != nil {
			return Point{}, err
		}
		vals[i] = v
	}

	p := Point{X: vals[0], Y: vals[1]}
	if shape == BoxRow {
		p.Heading = vals[2]
	}
	return p, nil
}

func ingestLine(text string, shape RowShape, line int) (Point, error) {
	if text == "" {
		return Point{}, fmt.Errorf("%w: line %d: blank line", ErrMalformedRow, line)
	}

	record, err := csv.NewReader(strings.NewReader(text)).Read()
	if err != nil {
		return Point{}, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
	}
	return IngestRow(record, shape, line)
}

// IngestPoints discards the first line unparsed and reads one point from
// every line after it. Blank data lines are rejected, not skipped.
func IngestPoints(r io.Reader, shape RowShape) ([]Point, error) {
	br := bufio.NewReader(r)

	header, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if header == "" {
		return nil, ErrMissingHeader
	}

	var points []Point
	sc := bufio.NewScanner(br)
	for line := 2; sc.Scan(); line++ {
		p, err := ingestLine(sc.Text(), shape, line)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return points, nil
}

// ReadPoints opens path on fs and returns its points in file order.
func ReadPoints(fs afero.Fs, path string, shape RowShape) ([]Point, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	points, err := IngestPoints(f, shape)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return points, nil
}
