package db

import (
	"context"
	"fmt"
	"time"

	"github.com/aquadrill/fieldops/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoVehicleCollection implements VehicleCollection for MongoDB
type MongoVehicleCollection struct {
	Collection *mongo.Collection
}

// InsertVehicle inserts a vehicle record into the collection.
func (c *MongoVehicleCollection) InsertVehicle(ctx context.Context, vehicle models.Vehicle) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	vehicle.CreatedAt = time.Now()
	_, err := c.Collection.InsertOne(ctx, vehicle)
	return err
}

// ListVehicles returns all vehicle records.
func (c *MongoVehicleCollection) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// MongoProductCollection implements ProductCollection for MongoDB
type MongoProductCollection struct {
	Collection *mongo.Collection
}

// InsertProduct inserts a product record into the collection.
func (c *MongoProductCollection) InsertProduct(ctx context.Context, product models.Product) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	product.CreatedAt = time.Now()
	_, err := c.Collection.InsertOne(ctx, product)
	return err
}

// ListProducts returns all product records.
func (c *MongoProductCollection) ListProducts(ctx context.Context) ([]models.Product, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// MongoEmployeeCollection implements EmployeeCollection for MongoDB
type MongoEmployeeCollection struct {
	Collection *mongo.Collection
}

// InsertEmployee inserts an employee record into the collection.
func (c *MongoEmployeeCollection) InsertEmployee(ctx context.Context, employee models.Employee) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	employee.CreatedAt = time.Now()
	_, err := c.Collection.InsertOne(ctx, employee)
	return err
}

// ListEmployees returns all employee records.
func (c *MongoEmployeeCollection) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}
