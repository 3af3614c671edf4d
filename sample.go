package main

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const (
	sourceBuiltin  = "builtin"
	sourceValues   = "values"
	sourceFile     = "file"
	sourcePostgres = "postgres"
)

// ErrInvalidValue is returned for tokens that are not finite numbers.
var ErrInvalidValue = errors.New("invalid sample value")

func builtinSample() []float64 {
	return []float64{0.2, 2, 6, 10, 11, 13, 13, 17, 17, 23, 27, 28, 35, 64}
}

func parseValue(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidValue, "%q", tok)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrapf(ErrInvalidValue, "%q is not finite", tok)
	}
	return v, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}

// parseValues splits s on commas, semicolons and whitespace.
func parseValues(s string) ([]float64, error) {
	var values []float64
	for _, tok := range strings.FieldsFunc(s, isSeparator) {
		v, err := parseValue(tok)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// readSample reads numbers line by line; text after '#' is ignored.
func readSample(r io.Reader) ([]float64, error) {
	var values []float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		vs, err := parseValues(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		values = append(values, vs...)
	}
	return values, scanner.Err()
}

func readSampleFile(path string) ([]float64, error) {
	if path == "-" {
		return readSample(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readSample(f)
}
