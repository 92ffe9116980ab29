// Package protolayout provides storage sizing primitives for a protocol
// buffer message layout runtime.
//
// When a message type is compiled into an in-memory layout, every field is
// assigned a storage footprint expressed as a power-of-two size class (the
// base-2 logarithm of its byte size). This module computes those classes,
// and supplies the round-up-to-power-of-two primitive that capacity
// planning elsewhere in the runtime is built on.
//
// # Architecture Overview
//
//	protolayout/        Root package with the AddressWidth parameter
//	├── field/          Closed kind enumerations (ScalarKind, WireKind)
//	├── sizeclass/      Size classification and ceiling-log2 primitives
//	├── errors/         Structured error types for contract violations
//	└── cmd/sizeclass/  Inspection CLI with table, JSON and interactive modes
//
// # Quick Start
//
// Classify a field and round a capacity:
//
//	c := sizeclass.New(protolayout.Addr64)
//
//	lg2, err := c.WireSizeLog2(field.WireMessage)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(1 << lg2) // 8
//
//	fmt.Println(sizeclass.CeilingPowerOfTwoSize(5)) // 8
//
// # Address Widths
//
// Message references and string/bytes views are wider on 64-bit addressing
// than on 32-bit. The width is threaded through Classifier construction as
// an explicit parameter rather than fixed at compile time, so one test
// binary covers both table variants; sizeclass.Native() selects the running
// process's width.
//
// All operations are pure functions over immutable constants and are safe
// for unsynchronized concurrent use.
package protolayout
