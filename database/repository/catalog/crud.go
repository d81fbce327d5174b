package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"shutterdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListPackages returns all catalog packages.
func (r *mongoCatalogRepo) ListPackages(ctx context.Context) ([]models.Package, error) {
	cursor, err := r.packages.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var packages []models.Package
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

// ListAddOns returns all catalog add-ons.
func (r *mongoCatalogRepo) ListAddOns(ctx context.Context) ([]models.AddOn, error) {
	cursor, err := r.addons.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var addons []models.AddOn
	if err := cursor.All(ctx, &addons); err != nil {
		return nil, err
	}
	return addons, nil
}

// UpsertPackage inserts or replaces a package by ID.
func (r *mongoCatalogRepo) UpsertPackage(ctx context.Context, pkg models.Package) error {
	if pkg.ID == "" {
		return fmt.Errorf("package id is required")
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.packages.ReplaceOne(ctx, bson.M{"id": pkg.ID}, pkg, opts); err != nil {
		return fmt.Errorf("failed to upsert package: %w", err)
	}
	return nil
}

// UpsertAddOn inserts or replaces an add-on by ID.
func (r *mongoCatalogRepo) UpsertAddOn(ctx context.Context, addon models.AddOn) error {
	if addon.ID == "" {
		return fmt.Errorf("addon id is required")
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.addons.ReplaceOne(ctx, bson.M{"id": addon.ID}, addon, opts); err != nil {
		return fmt.Errorf("failed to upsert addon: %w", err)
	}
	return nil
}

// EnsureIndexes creates unique ID indexes on both catalog collections.
func (r *mongoCatalogRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_id"),
	}
	if _, err := r.packages.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create package indexes: %w", err)
	}
	if _, err := r.addons.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create addon indexes: %w", err)
	}
	return nil
}
