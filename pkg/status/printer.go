// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/walteh/focustune/pkg/batch"
	"gitlab.com/tozd/go/errors"
)

// 📢 Printer writes batch results to a terminal
type Printer struct {
	out       io.Writer
	formatter Formatter
}

// NewPrinter creates a printer writing to out
func NewPrinter(out io.Writer, formatter Formatter) *Printer {
	if formatter == nil {
		formatter = NewDefaultFormatter()
	}
	return &Printer{out: out, formatter: formatter}
}

// Summary prints the failures, if any, and the final verdict
func (p *Printer) Summary(s *batch.Summary) error {
	if len(s.Failures) > 0 {
		data := pterm.TableData{{"#", "file", "error"}}
		for _, f := range s.Failures {
			data = append(data, []string{strconv.Itoa(f.Index), f.Path, f.Err.Error()})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(p.out).Render(); err != nil {
			return errors.Errorf("rendering failure table: %w", err)
		}
	}

	msg := p.formatter.FormatSummary(s)
	switch {
	case s.Attempted == 0:
		pterm.Warning.WithWriter(p.out).Println(msg)
	case s.OK():
		pterm.Success.WithWriter(p.out).Println(msg)
	case s.Succeeded == 0:
		pterm.Error.WithWriter(p.out).Println(msg)
	default:
		pterm.Warning.WithWriter(p.out).Println(msg)
	}
	return nil
}

// NoFiles tells the user there was nothing to do
func (p *Printer) NoFiles() {
	pterm.Warning.WithWriter(p.out).Println("no files selected, pass paths, --drop or an include pattern")
}

// Error prints err
func (p *Printer) Error(err error) {
	pterm.Error.WithWriter(p.out).Println(p.formatter.FormatError(err))
}
