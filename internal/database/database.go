// Package database opens the record store selected by configuration and
// exposes its repositories.
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"storefront/internal/config"
	"storefront/internal/errs"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// defaultMongoDatabase matches what the MongoDB tooling picks when the URI names none.
const defaultMongoDatabase = "test"

// Store is the single long-lived store handle shared by all requests.
type Store struct {
	Driver    string
	Products  repositories.ProductRepository
	Enquiries repositories.EnquiryRepository

	close func(ctx context.Context) error
}

// Close releases the underlying connection.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Connect opens the configured store and verifies it is reachable.
// Any failure is returned as an *errs.ConnectionError.
func Connect(ctx context.Context, cfg config.StoreConfig, log zerolog.Logger) (*Store, error) {
	log.Info().Str("driver", cfg.Driver).Msg("connecting to the store...")

	var (
		store *Store
		err   error
	)
	switch cfg.Driver {
	case config.DriverMongo:
		store, err = connectMongo(ctx, cfg)
	case config.DriverPostgres:
		store, err = openGORM(postgres.Open(cfg.DSN))
	case config.DriverSQLite:
		store, err = openGORM(sqlite.Open(cfg.DSN))
	case config.DriverMemory:
		store = &Store{
			Products:  repositories.NewMockProductRepository(),
			Enquiries: repositories.NewMockEnquiryRepository(),
		}
	default:
		err = fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, &errs.ConnectionError{Driver: cfg.Driver, Err: err}
	}

	store.Driver = cfg.Driver
	log.Info().Str("driver", cfg.Driver).Msg("store connected")
	return store, nil
}

func connectMongo(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	name, err := mongoDatabaseName(cfg)
	if err != nil {
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	db := client.Database(name)
	return &Store{
		Products:  repositories.NewMongoProductRepository(db),
		Enquiries: repositories.NewMongoEnquiryRepository(db),
		close:     client.Disconnect,
	}, nil
}

func mongoDatabaseName(cfg config.StoreConfig) (string, error) {
	if cfg.MongoDatabase != "" {
		return cfg.MongoDatabase, nil
	}
	cs, err := connstring.ParseAndValidate(cfg.MongoURI)
	if err != nil {
		return "", err
	}
	if cs.Database == "" {
		return defaultMongoDatabase, nil
	}
	return cs.Database, nil
}

func openGORM(dialector gorm.Dialector) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Enquiry{}); err != nil {
		return nil, errors.Join(err, closeGORM(db))
	}

	return &Store{
		Products:  repositories.NewGORMProductRepository(db),
		Enquiries: repositories.NewGORMEnquiryRepository(db),
		close: func(context.Context) error {
			return closeGORM(db)
		},
	}, nil
}

func closeGORM(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
