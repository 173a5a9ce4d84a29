package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/JustDean/sessionstore/grpc"
	"github.com/JustDean/sessionstore/pkg/config"
	"github.com/JustDean/sessionstore/pkg/session"
	"github.com/JustDean/sessionstore/rest"
)

func main() {
	configPath := flag.String("config", "", "path to a config file")
	flag.Parse()

	log.Println("Starting the app")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config %v", err)
	}
	store, err := session.SetStore(cfg.StoreConfig())
	if err != nil {
		log.Fatalf("Error setting Session Store %v", err)
	}
	server, err := grpc.SetServer(cfg.Server, store)
	if err != nil {
		store.Close()
		log.Fatalf("Error setting gRPC server %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// the store outlives the transports so in-flight requests can finish
	storeCtx, stopStore := context.WithCancel(context.Background())
	storeDone := make(chan struct{})
	go func() {
		defer close(storeDone)
		store.Run(storeCtx)
	}()
	var wg sync.WaitGroup
	if cfg.Http.Enabled {
		httpServer := rest.SetServer(cfg.Http, store)
		wg.Add(1)
		go func() {
			defer wg.Done()
			httpServer.Run(ctx)
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		server.Run(ctx)
	}()
	wg.Wait()
	stopStore()
	<-storeDone
	log.Println("Service is shut down.")
}
