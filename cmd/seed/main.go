// Command seed loads products from a JSON file into the configured store.
//
//	go run ./cmd/seed -file products.json
//
// The file holds a JSON array of {name, description, benefits} objects.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/errs"
	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/services"
)

func main() {
	file := flag.String("file", "products.json", "path to a JSON array of products")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)

	if err := run(context.Background(), cfg, *file, log); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
}

func run(ctx context.Context, cfg *config.Config, path string, log zerolog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	products, err := readProducts(f)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	store, err := database.Connect(ctx, cfg.Store, log)
	if err != nil {
		return err
	}
	defer store.Close(ctx)

	n, err := seed(ctx, services.NewProductService(store.Products, log), products, log)
	log.Info().Int("seeded", n).Int("total", len(products)).Msg("seeding finished")
	return err
}

func readProducts(r io.Reader) ([]models.Product, error) {
	var products []models.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, err
	}
	return products, nil
}

// seed stores every valid product and reports how many were stored. Invalid
// products are logged and skipped; a store error stops seeding.
func seed(ctx context.Context, svc *services.ProductService, products []models.Product, log zerolog.Logger) (int, error) {
	seeded := 0
	for i := range products {
		p := &products[i]
		p.ID = ""
		if err := svc.CreateProduct(ctx, p); err != nil {
			var ve *errs.ValidationError
			if errors.As(err, &ve) {
				log.Warn().Err(err).Int("index", i).Msg("skipping invalid product")
				continue
			}
			return seeded, err
		}
		log.Info().Str("id", p.ID).Str("name", p.Name).Msg("seeded product")
		seeded++
	}
	return seeded, nil
}
