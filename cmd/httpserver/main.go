package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"httpengine/request"
	"httpengine/response"
	"httpengine/server"
	"httpengine/status"
)

const port = 42069

func main() {
	srv := server.New([4]byte{127, 0, 0, 1}, port)

	srv.At("/yourproblem").Get(func(request.ServerRequest) response.Responder {
		return response.NewBuilder().
			Status(status.BadRequest).
			Header("Content-Type", "text/html").
			Body([]byte(`
<html>
  <head>
    <title>400 Bad Request</title>
  </head>
  <body>
    <h1>Bad Request</h1>
    <p>Your request honestly kinda sucked.</p>
  </body>
</html>
			`)).Build()
	})

	srv.At("/myproblem").Get(func(request.ServerRequest) response.Responder {
		return response.NewBuilder().
			Status(status.InternalServerError).
			Header("Content-Type", "text/html").
			Body([]byte(`
<html>
  <head>
    <title>500 Internal Server Error</title>
  </head>
  <body>
    <h1>Internal Server Error</h1>
    <p>Okay, you know what? This one is on me.</p>
  </body>
</html>
			`)).Build()
	})

	srv.At("/ping").Get(func(request.ServerRequest) response.Responder {
		return response.Empty()
	})

	srv.At("/greet/{name}").Get(func(sreq request.ServerRequest) response.Responder {
		name, _ := sreq.Param("name")
		return response.NewBuilder().
			Header("Content-Type", "text/plain").
			Body([]byte("Hello, " + name + "!")).
			Build()
	})

	srv.At("/").Get(func(request.ServerRequest) response.Responder {
		return response.NewBuilder().
			Header("Content-Type", "text/html").
			Body([]byte(`
<html>
  <head>
    <title>200 OK</title>
  </head>
  <body>
    <h1>Success!</h1>
    <p>Your request was an absolute banger.</p>
  </body>
</html>
			`)).Build()
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	log.Println("Server started on port:", port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	if err := srv.Close(); err != nil {
		log.Printf("error closing server: %v", err)
	}
	log.Println("Server gracefully stopped")
}
