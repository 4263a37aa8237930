package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cinelog/cinelog-api/internal/domain/entity"
	"github.com/cinelog/cinelog-api/internal/domain/repository"
)

const usersCollection = "users"

// userDoc is the store-side shape of a user. Identifiers are ObjectIDs in
// the store and opaque hex strings everywhere above this package.
type userDoc struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty"`
	Username       string               `bson:"username"`
	Email          string               `bson:"email"`
	Password       string               `bson:"password"`
	FavoriteMovies []primitive.ObjectID `bson:"favoriteMovies"`
	FavoriteSeries []primitive.ObjectID `bson:"favoriteSeries"`
	CreatedAt      time.Time            `bson:"created_at"`
}

func (d *userDoc) toEntity() *entity.User {
	return &entity.User{
		ID:             d.ID.Hex(),
		Username:       d.Username,
		Email:          d.Email,
		Password:       d.Password,
		FavoriteMovies: hexIDs(d.FavoriteMovies),
		FavoriteSeries: hexIDs(d.FavoriteSeries),
		CreatedAt:      d.CreatedAt,
	}
}

func hexIDs(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *Mongo) *UserRepository {
	return &UserRepository{collection: db.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	doc := userDoc{
		Username:       u.Username,
		Email:          u.Email,
		Password:       u.Password,
		FavoriteMovies: []primitive.ObjectID{},
		FavoriteSeries: []primitive.ObjectID{},
		CreatedAt:      time.Now(),
	}
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid.Hex()
	}
	u.FavoriteMovies = []string{}
	u.FavoriteSeries = []string{}
	u.CreatedAt = doc.CreatedAt
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed identifier cannot match any document.
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}
	n, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddFavorite appends mediaID to the user's favorites of the given kind,
// if and only if it is not already present. The membership guard and the
// append are a single document update, so concurrent adds cannot produce
// duplicates.
func (r *UserRepository) AddFavorite(ctx context.Context, userID string, kind entity.MediaKind, mediaID string) (bool, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, nil
	}
	mid, err := primitive.ObjectIDFromHex(mediaID)
	if err != nil {
		return false, nil
	}
	field := kind.FavoritesField()
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": uid, field: bson.M{"$ne": mid}},
		bson.M{"$addToSet": bson.M{field: mid}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// RemoveFavorite removes mediaID from the user's favorites of the given
// kind, if present. Symmetric with AddFavorite.
func (r *UserRepository) RemoveFavorite(ctx context.Context, userID string, kind entity.MediaKind, mediaID string) (bool, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, nil
	}
	mid, err := primitive.ObjectIDFromHex(mediaID)
	if err != nil {
		return false, nil
	}
	field := kind.FavoritesField()
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": uid, field: mid},
		bson.M{"$pull": bson.M{field: mid}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc userDoc
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
