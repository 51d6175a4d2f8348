package report

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/report.schema.json
var schemaJSON []byte

// ErrInvalidReport is returned when a JSON report does not match the schema.
var ErrInvalidReport = errors.New("invalid report")

// Validate checks a JSON report document against the report schema.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidReport, err)
	}

	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		problems = append(problems, verr.Field()+": "+verr.Description())
	}

	return fmt.Errorf("%w: %s", ErrInvalidReport, strings.Join(problems, "; "))
}

// ReadJSON validates and decodes a JSON report.
func ReadJSON(r io.Reader) (Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Report{}, fmt.Errorf("read report: %w", err)
	}

	err = Validate(data)
	if err != nil {
		return Report{}, err
	}

	var rep Report

	err = json.NewDecoder(bytes.NewReader(data)).Decode(&rep)
	if err != nil {
		return Report{}, fmt.Errorf("decode report: %w", err)
	}

	return rep, nil
}
