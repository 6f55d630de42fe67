package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/codetesla51/raw-static/server"
	"github.com/fatih/color"
)

func main() {
	config := server.DefaultConfig()
	flag.StringVar(&config.Host, "host", config.Host, "host to listen on")
	flag.IntVar(&config.Port, "port", config.Port, "port to listen on")
	flag.StringVar(&config.Root, "root", config.Root, "directory to serve files from")
	flag.IntVar(&config.ReadBufferSize, "read-buffer", config.ReadBufferSize, "bytes read from each connection")
	flag.BoolVar(&config.EnableLogging, "log", config.EnableLogging, "log every request")
	flag.Parse()

	if err := run(config); err != nil {
		log.Fatal(err)
	}
	log.Print("Server stopped")
}

// run serves until SIGINT or SIGTERM closes the listener
func run(config *server.Config) error {
	srv, err := server.NewServer(config)
	if err != nil {
		return err
	}

	// create listener
	listener, err := net.Listen("tcp", config.Addr())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	log.Print(color.CyanString("Serving %s at http://%s", srv.Root(), listener.Addr()))
	return srv.Serve(listener)
}
