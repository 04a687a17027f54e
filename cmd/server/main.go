package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/yourusername/skrynky/internal/config"
	"github.com/yourusername/skrynky/internal/server"
)

func main() {
	configPath := flag.String("config", "", "Directory containing skrynky.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Config: ", err)
	}

	srv := server.NewServer()

	http.HandleFunc("/ws", srv.HandleWebSocket)

	log.Printf("Starting server on %s", cfg.Addr())
	if err := http.ListenAndServe(cfg.Addr(), nil); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
