package mongodb

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cinelog/cinelog-api/internal/domain/entity"
	"github.com/cinelog/cinelog-api/internal/domain/repository"
)

// mediaDoc is the store-side shape shared by the movies and series
// collections; the episode fields exist only on series documents.
type mediaDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Image       string             `bson:"image"`
	Trailer     string             `bson:"trailer"`
	AddedDate   time.Time          `bson:"added_date"`
	Rating      float64            `bson:"rating"`

	NumberOfEpisodes *int `bson:"numberOfEpisodes,omitempty"`
	Seasons          *int `bson:"seasons,omitempty"`
}

func (d *mediaDoc) toEntity() entity.Media {
	return entity.Media{
		ID:               d.ID.Hex(),
		Title:            d.Title,
		Description:      d.Description,
		Image:            d.Image,
		Trailer:          d.Trailer,
		AddedDate:        d.AddedDate,
		Rating:           d.Rating,
		NumberOfEpisodes: d.NumberOfEpisodes,
		Seasons:          d.Seasons,
	}
}

type MediaRepository struct {
	db *Mongo
}

func NewMediaRepository(db *Mongo) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) collection(kind entity.MediaKind) *mongo.Collection {
	return r.db.Collection(kind.Collection())
}

func (r *MediaRepository) GetByID(ctx context.Context, kind entity.MediaKind, id string) (*entity.Media, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc mediaDoc
	err = r.collection(kind).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m := doc.toEntity()
	return &m, nil
}

func (r *MediaRepository) GetByIDs(ctx context.Context, kind entity.MediaKind, ids []string) ([]entity.Media, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []entity.Media{}, nil
	}
	return r.find(ctx, kind, bson.M{"_id": bson.M{"$in": oids}}, nil)
}

func (r *MediaRepository) All(ctx context.Context, kind entity.MediaKind) ([]entity.Media, error) {
	return r.find(ctx, kind, bson.M{}, nil)
}

func (r *MediaRepository) SearchByTitle(ctx context.Context, kind entity.MediaKind, title string) ([]entity.Media, error) {
	filter := bson.M{"title": primitive.Regex{Pattern: regexp.QuoteMeta(title), Options: "i"}}
	return r.find(ctx, kind, filter, nil)
}

func (r *MediaRepository) TopRated(ctx context.Context, kind entity.MediaKind, limit int64) ([]entity.Media, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, kind, bson.M{}, opts)
}

func (r *MediaRepository) Page(ctx context.Context, kind entity.MediaKind, page, perPage int64) ([]entity.Media, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetSkip((page - 1) * perPage).
		SetLimit(perPage)
	return r.find(ctx, kind, bson.M{}, opts)
}

func (r *MediaRepository) find(ctx context.Context, kind entity.MediaKind, filter bson.M, opts *options.FindOptions) ([]entity.Media, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.collection(kind).Find(ctx, filter, opts)
	} else {
		cursor, err = r.collection(kind).Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []mediaDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	media := make([]entity.Media, 0, len(docs))
	for i := range docs {
		media = append(media, docs[i].toEntity())
	}
	return media, nil
}

var _ repository.MediaRepository = (*MediaRepository)(nil)
