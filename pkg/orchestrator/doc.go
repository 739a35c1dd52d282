// Package orchestrator wires the loader, parser, model builder and renderer
// into a single pipeline: contract in, rendered form out. The form model is
// built once and reused for every render.
package orchestrator
