// Command httpget exercises the stub client (spec §4.10) against a
// single URL passed as the first argument.
package main

import (
	"fmt"
	"os"

	"httpengine/client"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: httpget http://host:port/path")
		os.Exit(1)
	}

	resp, err := client.New().Get(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Printf("HTTP/%s %d %s\n", resp.Header.Version, resp.Header.Status.Code, resp.Header.Status.Reason)
	for _, name := range resp.Header.Headers.Names() {
		fmt.Printf("%s: %s\n", name, resp.Header.Headers.Get(name))
	}
	fmt.Println()
	os.Stdout.Write(resp.Body.Bytes)
}
