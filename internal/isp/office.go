package isp

import (
	"io"

	"github.com/mesh-intelligence/solid/pkg/types"
)

type Printer interface {
	Print(w io.Writer) error
}

type Scanner interface {
	Scan(w io.Writer) error
}

// OfficePrinter prints and cannot scan.
type OfficePrinter struct{}

func (OfficePrinter) Print(w io.Writer) error {
	return types.WriteLine(w, types.LabelPrint)
}

// OfficeScanner scans and cannot print.
type OfficeScanner struct{}

func (OfficeScanner) Scan(w io.Writer) error {
	return types.WriteLine(w, types.LabelScan)
}

var (
	_ Printer = OfficePrinter{}
	_ Scanner = OfficeScanner{}
)
