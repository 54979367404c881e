package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/qnkhuat/tetristerm/pkg/server"
	"github.com/qnkhuat/tetristerm/pkg/util"
)

func main() {
	addr := flag.String("addr", server.DefaultAddress, "address to listen for ssh connections")
	hostKey := flag.String("hostkey", "", "path to the ssh host key, generated when empty")
	binary := flag.String("binary", "tetristerm", "path to the tetristerm client")
	clientArgs := flag.String("args", "", "space separated arguments passed to every client")
	logPath := flag.String("log", "", "path to log file, stderr when empty")
	flag.Parse()

	if *logPath != "" {
		logFile, err := util.InitLog(*logPath, "SERVER: ")
		if err != nil {
			log.Fatal(err)
		}
		defer logFile.Close()
	} else {
		log.SetPrefix(color.MagentaString("SERVER: "))
	}

	s := &server.Server{
		ListenAddress: *addr,
		HostKeyFile:   *hostKey,
		Binary:        *binary,
		Args:          strings.Fields(*clientArgs),
	}

	sigc := make(chan os.Signal, 1)
	// Wait for terminate signal
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			log.Printf("Failed to shut down: %s", err)
		}
	}()

	log.Println("Server started")
	if err := s.ListenAndServe(); err != nil {
		log.Fatalf("Server stopped: %s", err)
	}
	log.Println("Server stopped")
}
