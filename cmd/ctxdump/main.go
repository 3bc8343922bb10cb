// CTX path dump utility for aswire.
//
// Use `ctxdump` to decode a base64 context path, as stored in secondary
// index and query definitions, and print its steps.
//
// Run the tool:
//
// ```bash
// ./bin/ctxdump <base64-ctx>
// ```
//
// Output includes:
// - One line per context step: selector id, create flags, and value.
// - The xxh3 checksum of the re-encoded path, for comparing definitions
//   across clusters.
package main

import (
	"fmt"
	"os"

	"github.com/zeebo/xxh3"

	"github.com/aswire/aswire"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ctxdump <base64-ctx>")
		os.Exit(1)
	}

	cfg := aswire.DefaultConfig()
	ctx, err := aswire.CTXFromBase64(cfg, os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding context path: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Steps: %d\n", len(ctx))
	for i, step := range ctx {
		// Create-order flags live in the top two bits of the selector id.
		flags := step.ID & 0xC0
		selector := step.ID &^ 0xC0
		if flags != 0 {
			fmt.Printf("  %d: selector=0x%02x flags=0x%02x value=%v\n", i, selector, flags, step.Value)
			continue
		}
		fmt.Printf("  %d: selector=0x%02x value=%v\n", i, selector, step.Value)
	}

	encoded, err := aswire.CTXToBytes(cfg, ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error re-encoding context path: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Checksum: %016x\n", xxh3.Hash(encoded))
}
