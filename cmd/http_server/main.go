package main

import (
	"os"

	"github.com/labstack/gommon/log"
	"github.com/radhian/credit-timeline/config"
	"github.com/radhian/credit-timeline/controllers"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("[App] Invalid configuration: %v", err)
	}

	app := controllers.App{}
	if err := app.Initialize(cfg); err != nil {
		log.Fatalf("[App] Startup failed: %v", err)
	}

	log.Fatal(app.RunServer())
}
