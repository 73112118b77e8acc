package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	fxcbor "github.com/fxamacker/cbor/v2"

	"github.com/msto63/bytex/foundation/core/errors"
	"github.com/msto63/bytex/foundation/utils/bytex"
	"github.com/msto63/bytex/pkg/core/config"
	"github.com/msto63/bytex/pkg/core/version"
)

// result is the outcome of one command, renderable in every output format
type result interface {
	text(w io.Writer) error
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// writeResult renders r to w in the given output format
func writeResult(w io.Writer, format string, r result) error {
	var err error
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		err = enc.Encode(r)
	case config.OutputCBOR:
		err = writeCBOR(w, r)
	case config.OutputDump:
		dumper.Fdump(w, r)
	case config.OutputText, "":
		err = r.text(w)
	default:
		return errors.InvalidInput(errors.ModuleCLI, "format", format, "one of text, json, cbor, dump")
	}
	if err != nil {
		return errors.NewErrorBuilder(errors.ModuleCLI).
			Operation("write_output").
			Detail("format", format).
			Cause(err).
			Build()
	}
	return nil
}

func writeCBOR(w io.Writer, r result) error {
	em, err := fxcbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return err
	}
	data, err := em.Marshal(r)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// bytesResult holds the byte sequences produced by a transforming command.
// CBOR carries the parts as byte strings; JSON carries them as text and
// escapes parts that are not valid UTF-8.
type bytesResult struct {
	Operation string   `cbor:"operation"`
	Parts     [][]byte `cbor:"parts"`

	multi bool
}

func newBytesResult(op string, parts ...[]byte) *bytesResult {
	return &bytesResult{Operation: op, Parts: parts}
}

func newPartsResult(op string, parts [][]byte) *bytesResult {
	return &bytesResult{Operation: op, Parts: parts, multi: true}
}

type jsonPart struct {
	Text    string `json:"text"`
	Escaped bool   `json:"escaped"`
}

func (r *bytesResult) MarshalJSON() ([]byte, error) {
	parts := make([]jsonPart, len(r.Parts))
	for i, p := range r.Parts {
		if utf8.Valid(p) {
			parts[i] = jsonPart{Text: string(p)}
		} else {
			parts[i] = jsonPart{Text: string(bytex.Escape(p, 0)), Escaped: true}
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(struct {
		Operation string     `json:"operation"`
		Parts     []jsonPart `json:"parts"`
	}{r.Operation, parts})
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), err
}

// text writes the raw bytes; multi-part results get one part per line.
func (r *bytesResult) text(w io.Writer) error {
	for _, p := range r.Parts {
		if _, err := w.Write(p); err != nil {
			return err
		}
		if r.multi {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

const sampleSize = 8

// printableReport is the verdict for a single input
type printableReport struct {
	Input     string `json:"input" cbor:"input"`
	Printable bool   `json:"printable" cbor:"printable"`
	Offset    int    `json:"offset" cbor:"offset"`
	Size      int    `json:"size" cbor:"size"`
	Sample    string `json:"sample,omitempty" cbor:"sample,omitempty"`
}

func newPrintableReport(in input, limit int) printableReport {
	offset := bytex.PrintablePrefix(in.data)
	rep := printableReport{
		Input:     in.name,
		Printable: bytex.IsPrintableLimit(in.data, limit),
		Offset:    offset,
		Size:      len(in.data),
	}
	if offset < len(in.data) {
		end := min(offset+sampleSize, len(in.data))
		rep.Sample = string(bytex.Escape(in.data[offset:end], 0))
	}
	return rep
}

type printableResult struct {
	Reports []printableReport `json:"reports" cbor:"reports"`
}

func (r *printableResult) ok() bool {
	for _, rep := range r.Reports {
		if !rep.Printable {
			return false
		}
	}
	return true
}

func (r *printableResult) text(w io.Writer) error {
	for _, rep := range r.Reports {
		var err error
		switch {
		case rep.Printable && rep.Offset < rep.Size:
			_, err = fmt.Fprintf(w, "%s: %s within limit, invalid at offset %d: %s\n",
				rep.Input, PartialStyle.Render("printable"), rep.Offset, SampleStyle.Render(rep.Sample))
		case rep.Printable:
			_, err = fmt.Fprintf(w, "%s: %s (%d bytes)\n",
				rep.Input, PrintableStyle.Render("printable"), rep.Size)
		default:
			_, err = fmt.Fprintf(w, "%s: %s at offset %d: %s\n",
				rep.Input, RejectedStyle.Render("not printable"), rep.Offset, SampleStyle.Render(rep.Sample))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type versionResult struct {
	version.Info
}

func (r *versionResult) text(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.Info.String())
	return err
}
