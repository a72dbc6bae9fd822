// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and the client services into a single
// process lifecycle: authenticate, browse the catalogue, and on logout start
// over.
package client
