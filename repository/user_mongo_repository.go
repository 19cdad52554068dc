package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"news-server/models"
)

type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository wraps the users collection and ensures the unique
// indexes on username and email.
func NewMongoUserRepository(db *mongo.Database, collection string) (UserRepository, error) {
	col := db.Collection(collection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return nil, err
	}

	return &mongoUserRepository{collection: col}, nil
}

func (r *mongoUserRepository) Insert(ctx context.Context, user *models.User) (string, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return user.ID.Hex(), nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never reference a stored user.
		return nil, ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": objID})
}

func (r *mongoUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Save writes the whole document back, mirroring a read-modify-save cycle.
func (r *mongoUserRepository) Save(ctx context.Context, user *models.User) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	return err
}
