package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mindscale/internal/model"
)

type TestRepository interface {
	Create(ctx context.Context, test *model.Test) error
	GetByID(ctx context.Context, id string) (*model.Test, error)
	GetByType(ctx context.Context, testType string) (*model.Test, error)
	List(ctx context.Context) ([]*model.Test, error)
	Delete(ctx context.Context, id string) error
}

type testRepository struct {
	collection *mongo.Collection
}

func NewTestRepository(client *mongo.Client, dbName string) TestRepository {
	db := client.Database(dbName)
	return &testRepository{
		collection: db.Collection("tests"),
	}
}

func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	if test.CreatedAt.IsZero() {
		test.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, test)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		test.ID = oid.Hex()
	}

	return nil
}

func (r *testRepository) GetByID(ctx context.Context, id string) (*model.Test, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var test model.Test
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&test)
	if err != nil {
		return nil, err
	}

	return &test, nil
}

func (r *testRepository) GetByType(ctx context.Context, testType string) (*model.Test, error) {
	var test model.Test
	err := r.collection.FindOne(ctx, bson.M{"testType": testType}).Decode(&test)
	if err != nil {
		return nil, err
	}

	return &test, nil
}

func (r *testRepository) List(ctx context.Context) ([]*model.Test, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tests []*model.Test
	if err = cursor.All(ctx, &tests); err != nil {
		return nil, err
	}

	return tests, nil
}

func (r *testRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
