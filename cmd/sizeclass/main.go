package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"

	protolayout "github.com/wippyai/proto-layout"
	"github.com/wippyai/proto-layout/errors"
	"github.com/wippyai/proto-layout/field"
	"github.com/wippyai/proto-layout/sizeclass"
)

func main() {
	var (
		scalarName  = flag.String("scalar", "", "Scalar kind to classify (e.g. message)")
		wireName    = flag.String("wire", "", "Wire field kind to classify (e.g. sfixed64)")
		capStr      = flag.String("cap", "", "Capacity to round up to a power of two")
		widthBits   = flag.Int("width", 0, "Address width in bits, 32 or 64 (default native)")
		table       = flag.Bool("table", false, "Print both size class tables and exit")
		jsonOut     = flag.Bool("json", false, "Emit JSON instead of text")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *scalarName == "" && *wireName == "" && *capStr == "" && !*table && !*interactive {
		fmt.Fprintln(os.Stderr, "Usage: sizeclass -scalar <kind> | -wire <kind> [-width 32|64] [-json]")
		fmt.Fprintln(os.Stderr, "       sizeclass -cap <n> [-json]")
		fmt.Fprintln(os.Stderr, "       sizeclass -table [-json]")
		fmt.Fprintln(os.Stderr, "       sizeclass -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*scalarName, *wireName, *capStr, *widthBits, *table, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type kindReport struct {
	Vocabulary string `json:"vocabulary"`
	Kind       string `json:"kind"`
	Width      string `json:"width"`
	SizeLog2   int    `json:"size_log2"`
	SizeBytes  int    `json:"size_bytes"`
}

type capacityReport struct {
	Capacity int `json:"capacity"`
	Log2     int `json:"log2"`
	Size     int `json:"size"`
}

func run(scalarName, wireName, capStr string, widthBits int, table, jsonOut bool) error {
	width, err := pickWidth(widthBits)
	if err != nil {
		return err
	}
	c := sizeclass.New(width)

	switch {
	case table:
		return printTables(jsonOut)

	case capStr != "":
		n, err := strconv.Atoi(capStr)
		if err != nil {
			return fmt.Errorf("parse capacity: %w", err)
		}
		if n < 0 || n > sizeclass.MaxCeilingInput {
			return errors.CapacityOutOfRange(n, sizeclass.MaxCeilingInput)
		}
		rep := capacityReport{
			Capacity: n,
			Log2:     sizeclass.CeilingLog2(n),
			Size:     sizeclass.CeilingPowerOfTwoSize(n),
		}
		if jsonOut {
			return emitJSON(rep)
		}
		fmt.Printf("capacity %d -> log2 %d, size %d\n", rep.Capacity, rep.Log2, rep.Size)
		return nil

	case scalarName != "":
		k, ok := field.ParseScalarKind(scalarName)
		if !ok {
			return fmt.Errorf("unknown scalar kind %q", scalarName)
		}
		lg2, err := c.ScalarSizeLog2(k)
		if err != nil {
			return err
		}
		return emitKind(jsonOut, "scalar", k.String(), width, lg2)

	default:
		k, ok := field.ParseWireKind(wireName)
		if !ok {
			return fmt.Errorf("unknown wire field kind %q", wireName)
		}
		lg2, err := c.WireSizeLog2(k)
		if err != nil {
			return err
		}
		return emitKind(jsonOut, "wire", k.String(), width, lg2)
	}
}

func pickWidth(bits int) (protolayout.AddressWidth, error) {
	switch bits {
	case 0:
		return protolayout.NativeWidth(), nil
	case 32:
		return protolayout.Addr32, nil
	case 64:
		return protolayout.Addr64, nil
	default:
		return 0, fmt.Errorf("unsupported address width %d (want 32 or 64)", bits)
	}
}

func emitKind(jsonOut bool, vocab, name string, width protolayout.AddressWidth, lg2 int) error {
	rep := kindReport{
		Vocabulary: vocab,
		Kind:       name,
		Width:      width.String(),
		SizeLog2:   lg2,
		SizeBytes:  1 << lg2,
	}
	if jsonOut {
		return emitJSON(rep)
	}
	fmt.Printf("%s %s (%s): size class %d (%d bytes)\n",
		rep.Vocabulary, rep.Kind, rep.Width, rep.SizeLog2, rep.SizeBytes)
	return nil
}

func printTables(jsonOut bool) error {
	narrow := sizeclass.New(protolayout.Addr32)
	wide := sizeclass.New(protolayout.Addr64)

	var reports []kindReport
	for k := field.ScalarBool; k <= field.ScalarBytes; k++ {
		n, err := narrow.ScalarSizeLog2(k)
		if err != nil {
			return err
		}
		w, err := wide.ScalarSizeLog2(k)
		if err != nil {
			return err
		}
		reports = append(reports, tableRows("scalar", k.String(), n, w)...)
	}
	for k := field.WireDouble; k <= field.WireSInt64; k++ {
		n, err := narrow.WireSizeLog2(k)
		if err != nil {
			return err
		}
		w, err := wide.WireSizeLog2(k)
		if err != nil {
			return err
		}
		reports = append(reports, tableRows("wire", k.String(), n, w)...)
	}

	if jsonOut {
		return emitJSON(reports)
	}

	fmt.Printf("%-6s %-10s %12s %12s\n", "vocab", "kind", "32-bit", "64-bit")
	for i := 0; i < len(reports); i += 2 {
		n, w := reports[i], reports[i+1]
		fmt.Printf("%-6s %-10s %4d (%3dB) %4d (%3dB)\n",
			n.Vocabulary, n.Kind, n.SizeLog2, n.SizeBytes, w.SizeLog2, w.SizeBytes)
	}
	return nil
}

func tableRows(vocab, name string, narrowLog2, wideLog2 int) []kindReport {
	return []kindReport{
		{Vocabulary: vocab, Kind: name, Width: protolayout.Addr32.String(),
			SizeLog2: narrowLog2, SizeBytes: 1 << narrowLog2},
		{Vocabulary: vocab, Kind: name, Width: protolayout.Addr64.String(),
			SizeLog2: wideLog2, SizeBytes: 1 << wideLog2},
	}
}

func emitJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
