// Package server implements the accept loop and keep-alive connection
// lifecycle (spec §4.8) on top of the worker pool and route table.
package server

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"net"
	"sync/atomic"
	"time"

	"httpengine/httperr"
	"httpengine/pool"
	"httpengine/request"
	"httpengine/response"
	"httpengine/route"
	"httpengine/status"
)

// connTimeout bounds reading each request (header block and body
// together) and writing each response on a connection; the deadline is
// renewed per request and per response, not per individual read or write.
const connTimeout = 2 * time.Second

// Server owns a route table and a listener. Construct with New, attach
// handlers via At, then call Start.
type Server struct {
	addr     net.TCPAddr
	routes   *route.Map
	pool     *pool.Pool
	listener net.Listener
	closed   atomic.Bool
}

// New builds a Server bound to the given IPv4 octets and port. It does
// not listen until Start is called.
func New(ipv4 [4]byte, port uint16) *Server {
	return &Server{
		addr:   net.TCPAddr{IP: net.IPv4(ipv4[0], ipv4[1], ipv4[2], ipv4[3]), Port: int(port)},
		routes: route.NewMap(),
	}
}

// At returns a route builder for pattern; chain a method call on it to
// register a handler.
func (s *Server) At(pattern string) *route.Builder {
	return route.NewBuilder(s.routes, pattern)
}

// Start binds the listener, builds the worker pool, and accepts
// connections until the listener is closed. It only returns on a
// listener error (including a deliberate Close).
func (s *Server) Start() error {
	listener, err := net.ListenTCP("tcp", &s.addr)
	if err != nil {
		return err
	}
	s.listener = listener

	workers, err := pool.New()
	if err != nil {
		return err
	}
	s.pool = workers

	routes := s.routes // immutable after Start; shared read-only across workers

	for {
		conn, err := listener.Accept()
		if err != nil {
			if s.closed.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}

		s.pool.Spawn(func() {
			handleConnection(conn, routes)
		})
	}
}

// Close idempotently stops accepting new connections.
func (s *Server) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}

func handleConnection(conn net.Conn, routes *route.Map) {
	defer conn.Close()

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(true)
	}

	peerAddr := conn.RemoteAddr().String()

	reader := bufio.NewReader(conn)
	writer := bufio.NewWriter(conn)

	for {
		_ = conn.SetReadDeadline(time.Now().Add(connTimeout))

		req, err := request.FromReader(reader)
		if err != nil {
			if errors.Is(err, httperr.ErrDataTimeout) || errors.Is(err, httperr.ErrConnectionTimeout) {
				return // idle keep-alive close, nothing to log
			}

			log.Printf("%s: %v", peerAddr, err)
			// §9 open question 2: always terminate on any non-timeout
			// error, never loop back to read again.
			return
		}

		resp := dispatch(routes, request.ServerRequest{Request: req, PeerAddr: peerAddr})

		_ = conn.SetWriteDeadline(time.Now().Add(connTimeout))
		if err := resp.WriteTo(writer); err != nil {
			log.Printf("%s: %v", peerAddr, err)
			return
		}
	}
}

// dispatch implements §4.6's lookup/dispatch rule and §4.9's handler
// panic-to-500 conversion.
func dispatch(routes *route.Map, sreq request.ServerRequest) response.Response {
	target := sreq.Request.Header.RequestLine.Target
	key, handlers, found := routes.Lookup(target)
	if !found {
		return response.NewBuilder().Status(status.NotFound).Build()
	}

	h, ok := handlers[sreq.Request.Header.RequestLine.Method]
	if !ok {
		return response.NewBuilder().Status(status.MethodNotAllowed).Build()
	}

	sreq.RoutePattern = key.Pattern
	return invoke(h, sreq)
}

func invoke(h route.Handler, sreq request.ServerRequest) (resp response.Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = response.NewBuilder().
				Status(status.InternalServerError).
				Body([]byte(fmt.Sprintf("handler panic: %v", r))).
				Build()
		}
	}()

	responder := h(sreq)
	out, err := responder.IntoResponse()
	if err != nil {
		return response.NewBuilder().Status(status.BadRequest).Body([]byte(err.Error())).Build()
	}
	return out
}
