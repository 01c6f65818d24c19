// Package repository implements the persistence layer: one generic repository
// over a MongoDB collection, instantiated per entity. Entity identifiers are
// ObjectIDs exposed to the rest of the system only in hex string form.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bodyai/backend/internal/models"
)

// ErrNotFound is returned by Update and Delete when no record matches the id.
// Read paths (FindByID, FindByEmail) report absence as a nil result instead.
var ErrNotFound = errors.New("repository: not found")

// entity constrains the generic repository to pointer types that carry the
// shared id/timestamp fields.
type entity[T any] interface {
	*T
	models.Entity
}

// Repository provides create/find/update/delete over one collection. Business
// validation does not live here; only identifier well-formedness is checked on
// read paths. Each operation is a single atomic document operation.
type Repository[T any, PT entity[T]] struct {
	coll     *mongo.Collection
	listSort bson.D
}

func newRepository[T any, PT entity[T]](coll *mongo.Collection, listSort bson.D) *Repository[T, PT] {
	return &Repository[T, PT]{coll: coll, listSort: listSort}
}

// Create stamps createdAt/updatedAt, persists the document and attaches the
// generated identifier.
func (r *Repository[T, PT]) Create(ctx context.Context, doc PT) (PT, error) {
	doc.StampNew(time.Now().UTC())

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", r.coll.Name(), err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert into %s: unexpected id type %T", r.coll.Name(), res.InsertedID)
	}
	doc.SetID(id)
	return doc, nil
}

// FindByID looks a document up by its hex id. A malformed or unknown id yields
// (nil, nil): absence is a normal result here, not an error.
func (r *Repository[T, PT]) FindByID(ctx context.Context, id string) (PT, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc T
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", r.coll.Name(), err)
	}
	return PT(&doc), nil
}

// Update merges the given fields into the stored document, refreshes
// updatedAt and returns the full updated entity. Fields not present are left
// untouched. Returns ErrNotFound when no record matches.
func (r *Repository[T, PT]) Update(ctx context.Context, id string, fields bson.M) (PT, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update in %s: %w", r.coll.Name(), err)
	}
	return PT(&doc), nil
}

// Delete removes a document permanently. Returns ErrNotFound when no record
// matched.
func (r *Repository[T, PT]) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete in %s: %w", r.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// findAll returns every document matching the filter in the repository's list
// order. No pagination: per-user volumes are small.
func (r *Repository[T, PT]) findAll(ctx context.Context, filter bson.M) ([]PT, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(r.listSort))
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", r.coll.Name(), err)
	}
	defer cur.Close(ctx)

	out := []PT{}
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode from %s: %w", r.coll.Name(), err)
		}
		out = append(out, PT(&doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", r.coll.Name(), err)
	}
	return out, nil
}
