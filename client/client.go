// Package client implements the stub HTTP client (spec §4.10): connect,
// write a request, read a response. No redirects, no connection reuse.
package client

import (
	"bufio"
	"net"
	"time"

	"httpengine/method"
	"httpengine/request"
	"httpengine/response"
	"httpengine/urlparse"
	"httpengine/version"
)

const dialTimeout = 2 * time.Second

// Client holds no state; it exists so call sites read like other
// stdlib clients (http.Client{}.Do(...)) even though every method here
// is a one-shot connect-send-receive.
type Client struct{}

// New returns a ready-to-use Client.
func New() Client { return Client{} }

// Get issues a GET against rawURL ("http://host:port/path") and returns
// the parsed response.
func (c Client) Get(rawURL string) (*response.Response, error) {
	u, err := urlparse.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	reader, writer, conn, err := setupConnection(u.Address)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	req := request.RequestHeader{
		RequestLine: request.RequestLine{
			Method:  method.GET,
			Target:  u.Path,
			Version: version.HTTP11,
		},
		Headers: request.DefaultRequestHeader().Headers,
	}
	req.Headers.Set("Host", hostOnly(u.Address))

	if err := writeRequestHeader(writer, req); err != nil {
		return nil, err
	}
	if err := writer.Flush(); err != nil {
		return nil, err
	}

	return response.FromReader(reader)
}

// setupConnection mirrors client.rs's setup_connection: connect,
// disable Nagle, set read and write deadlines 2 seconds after connecting,
// and hand back independent buffered reader/writer halves. The deadlines
// are not renewed per operation, so the whole exchange on the connection
// must finish within that window.
func setupConnection(address string) (*bufio.Reader, *bufio.Writer, net.Conn, error) {
	conn, err := net.DialTimeout("tcp", address, dialTimeout)
	if err != nil {
		return nil, nil, nil, err
	}

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(true)
	}
	_ = conn.SetReadDeadline(time.Now().Add(dialTimeout))
	_ = conn.SetWriteDeadline(time.Now().Add(dialTimeout))

	return bufio.NewReader(conn), bufio.NewWriter(conn), conn, nil
}

func hostOnly(address string) string {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return address
	}
	return host
}

func writeRequestHeader(w *bufio.Writer, h request.RequestHeader) error {
	line := h.RequestLine
	if _, err := w.WriteString(string(line.Method) + " " + line.Target + " HTTP/" + line.Version.String() + "\r\n"); err != nil {
		return err
	}
	for _, name := range h.Headers.Names() {
		if _, err := w.WriteString(name + ": " + h.Headers.Get(name) + "\r\n"); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\r\n")
	return err
}
