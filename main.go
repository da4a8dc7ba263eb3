package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Aquilabot/KreaPC-Market/internal/api"
	"github.com/Aquilabot/KreaPC-Market/internal/config"
	"github.com/Aquilabot/KreaPC-Market/pkg/builder"
	"github.com/Aquilabot/KreaPC-Market/pkg/catalog"
	"github.com/Aquilabot/KreaPC-Market/pkg/compatibility"
	"github.com/Aquilabot/KreaPC-Market/pkg/listing"
	"github.com/gofiber/fiber/v2/log"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, config.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.Level)
	cfg.Print()

	// Catalog: embedded unless a file is configured
	store := catalog.Default()
	if cfg.CatalogFile != "" {
		store, err = catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	source := listing.DefaultSource()
	if cfg.Seed != 0 {
		source = listing.NewSeededSource(cfg.Seed)
	}

	app := api.New(
		store,
		listing.NewGenerator(store, source),
		builder.NewAssembler(store, compatibility.NewChecker()),
		api.Popular{Products: cfg.Popular.Products, Listings: cfg.Popular.Listings},
	)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info("Shutting down")
		if err := app.Shutdown(); err != nil {
			log.Warnf("Could not shut down cleanly: %v", err)
		}
	}()

	// Start the server
	log.Infof("Listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
