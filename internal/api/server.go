package api

import (
	"errors"

	"github.com/Aquilabot/KreaPC-Market/internal/models"
	"github.com/Aquilabot/KreaPC-Market/pkg/builder"
	"github.com/Aquilabot/KreaPC-Market/pkg/catalog"
	"github.com/Aquilabot/KreaPC-Market/pkg/listing"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

const (
	logBuildRejected = "Build rejected: %v"
	logFormat        = "${pid} | ${time} | ${latency} | [${ip}]:${port} | ${status} - ${method} ${path}\n"
)

type Popular struct {
	Products int
	Listings int
}

// New returns the HTTP API over store. Listing and build endpoints use
// generator and assembler.
func New(store *catalog.Store, generator *listing.Generator, assembler *builder.Assembler, popular Popular) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(helmet.New())
	app.Use(logger.New(logger.Config{
		Format: logFormat,
	}))

	// Merchant roster in registration order
	app.Get("/merchants", func(c *fiber.Ctx) error {
		return c.JSON(store.ListMerchants())
	})

	// Catalog browsing, optionally filtered by ?type=
	app.Get("/hardware", func(c *fiber.Ctx) error {
		typ := models.HardwareType(c.Query("type"))
		if typ == "" {
			return c.JSON(store.AllHardware())
		}
		if !typ.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown hardware type"})
		}
		return c.JSON(store.ListHardware(typ))
	})

	app.Get("/hardware/:id", func(c *fiber.Ctx) error {
		h, ok := store.FindHardware(c.Params("id"))
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hardware not found"})
		}
		return c.JSON(h)
	})

	// Unknown hardware is an empty comparison, not an error
	app.Get("/hardware/:id/listings", func(c *fiber.Ctx) error {
		return c.JSON(generator.GenerateListings(c.Params("id")))
	})

	app.Get("/comparisons/popular", func(c *fiber.Ctx) error {
		return c.JSON(generator.PopularComparisons(popular.Products, popular.Listings))
	})

	app.Post("/builds", func(c *fiber.Ctx) error {
		var req builder.Request
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
		}

		build, err := assembler.Assemble(req)
		if err != nil {
			log.Warnf(logBuildRejected, err)
			if errors.Is(err, builder.ErrUnknownPart) || errors.Is(err, builder.ErrWrongCategory) {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error assembling build"})
		}
		return c.Status(fiber.StatusCreated).JSON(build)
	})

	return app
}
