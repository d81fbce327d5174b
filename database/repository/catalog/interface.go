package catalogRepo

import (
	"context"

	"shutterdesk/database"
	"shutterdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository is the catalog store for packages and add-ons.
type CatalogRepository interface {
	ListPackages(ctx context.Context) ([]models.Package, error)
	ListAddOns(ctx context.Context) ([]models.AddOn, error)
	UpsertPackage(ctx context.Context, pkg models.Package) error
	UpsertAddOn(ctx context.Context, addon models.AddOn) error
	EnsureIndexes() error
}

type mongoCatalogRepo struct {
	packages *mongo.Collection
	addons   *mongo.Collection
}

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoCatalogRepo{
		packages: db.Collection("packages"),
		addons:   db.Collection("addons"),
	}
}
