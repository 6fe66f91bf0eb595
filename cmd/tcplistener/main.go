// Command tcplistener is a raw debug tool: it accepts connections, each
// handled on its own goroutine, parses one request per connection with
// the request package, and dumps the parsed result to stdout before
// replying with a fixed 200.
package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"sort"
	"time"

	"httpengine/request"
)

const addr = ":42069"

func main() {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		fmt.Println("ERROR: failed to open.", err)
		os.Exit(1)
	}
	defer listener.Close()

	fmt.Println("Listening for TCP traffic on", addr)
	for {
		conn, err := listener.Accept()
		if err != nil {
			fmt.Println("ERROR: failed to accept.", err)
			continue
		}
		go handleConn(conn)
	}
}

func handleConn(conn net.Conn) {
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(5 * time.Second))

	req, err := request.FromReader(bufio.NewReader(conn))
	if err != nil {
		fmt.Println("ERROR: failed to parse request:", err)
		return
	}

	line := req.Header.RequestLine
	fmt.Printf("Request line:\n- Method: %s\n- Target: %s\n- Version: %s\n",
		line.Method, line.Target, line.Version)

	fmt.Println("Headers:")
	names := req.Header.Headers.Names()
	if len(names) == 0 {
		fmt.Println("- (none)")
	} else {
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("- %s: %s\n", name, req.Header.Headers.Get(name))
		}
	}

	fmt.Println("Body:")
	if req.Body.Len() == 0 {
		fmt.Println("- (none)")
	} else {
		fmt.Println(string(req.Body.Bytes))
	}

	resp := "HTTP/1.1 200 OK\r\n" +
		"Content-Type: text/plain\r\n" +
		"Content-Length: 2\r\n" +
		"Connection: close\r\n" +
		"\r\n" +
		"OK"
	_, _ = conn.Write([]byte(resp))
}
