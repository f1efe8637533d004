// Package jvmflow provides control-flow label analysis for JVM bytecode.
//
// The library answers one question about a method body: which positions
// in the instruction stream matter for branch coverage instrumentation.
// It marks every label with the properties a probe planner needs (jump
// target, join point, fall-through reachability, call attribution) and
// turns those properties into a deterministic probe insertion plan.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	jvm-flow/            Root package documentation
//	├── bytecode/        Instruction stream model, opcodes, labels
//	├── flow/            Frame normalization and label flow analysis
//	├── probe/           Coverage probe insertion planning
//	├── jasm/            Textual bytecode listing assembler
//	├── engine/          Batch pipeline with structured logging
//	├── errors/          Structured error types for debugging
//	└── cmd/flowmap/     CLI for inspecting listings
//
// # Quick Start
//
// Assemble a listing and analyze it:
//
//	body, err := jasm.Assemble(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store, err := flow.MarkLabels(body)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	points, err := probe.Plan(body, store, probe.DefaultOptions())
//
// Or run the whole pipeline over a batch:
//
//	results := engine.AnalyzeAll(bodies, engine.DefaultOptions(), 4)
//
// # Unsupported Constructs
//
// Methods using jsr, jsr_w or ret are rejected with a structured error.
// Subroutines have been obsolete since class file version 50 and their
// flow semantics cannot be expressed with per-label properties.
//
// # Thread Safety
//
// A flow.Store and the analysis that fills it are confined to a single
// goroutine. Analyzing different method bodies concurrently is safe, as
// engine.AnalyzeAll does, because every body gets its own store.
package jvmflow
