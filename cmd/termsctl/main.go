// Command termsctl works with consent-flow contracts and terms files offline:
// it builds minimum terms, compares two terms files, prunes stale shared URIs,
// and mints development bearer tokens.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
