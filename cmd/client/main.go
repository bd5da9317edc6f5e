package main

import (
	"context"
	"log"

	"github.com/Jovinull/MyGastronomy/internal/client/cli"
	"github.com/Jovinull/MyGastronomy/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
