package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cinelog/cinelog-api/config"
	"github.com/cinelog/cinelog-api/internal/domain/entity"
	"github.com/cinelog/cinelog-api/internal/infrastructure/mongodb"
	"github.com/cinelog/cinelog-api/pkg/helpers"
)

type seedMedia struct {
	title       string
	description string
	image       string
	trailer     string
	rating      float64
	episodes    int // series only
	seasons     int // series only
}

var movies = []seedMedia{
	{title: "The Matrix", description: "A hacker discovers the world is a simulation.", image: "https://images.cinelog.dev/matrix.jpg", trailer: "https://videos.cinelog.dev/matrix-trailer.mp4", rating: 8.7},
	{title: "Inception", description: "A thief steals secrets through dream infiltration.", image: "https://images.cinelog.dev/inception.jpg", trailer: "https://videos.cinelog.dev/inception-trailer.mp4", rating: 8.8},
	{title: "Interstellar", description: "Explorers travel through a wormhole to save humanity.", image: "https://images.cinelog.dev/interstellar.jpg", trailer: "https://videos.cinelog.dev/interstellar-trailer.mp4", rating: 8.6},
	{title: "The Godfather", description: "The aging patriarch of a crime dynasty transfers control.", image: "https://images.cinelog.dev/godfather.jpg", trailer: "https://videos.cinelog.dev/godfather-trailer.mp4", rating: 9.2},
	{title: "Parasite", description: "A poor family schemes its way into a wealthy household.", image: "https://images.cinelog.dev/parasite.jpg", trailer: "https://videos.cinelog.dev/parasite-trailer.mp4", rating: 8.5},
	{title: "Mad Max: Fury Road", description: "A wasteland chase between tyrants and survivors.", image: "https://images.cinelog.dev/madmax.jpg", trailer: "https://videos.cinelog.dev/madmax-trailer.mp4", rating: 8.1},
}

var series = []seedMedia{
	{title: "Breaking Bad", description: "A chemistry teacher turns to manufacturing meth.", image: "https://images.cinelog.dev/breakingbad.jpg", trailer: "https://videos.cinelog.dev/breakingbad-trailer.mp4", rating: 9.5, episodes: 62, seasons: 5},
	{title: "The Wire", description: "Baltimore's drug scene through the eyes of both sides.", image: "https://images.cinelog.dev/thewire.jpg", trailer: "https://videos.cinelog.dev/thewire-trailer.mp4", rating: 9.3, episodes: 60, seasons: 5},
	{title: "Chernobyl", description: "The story of the 1986 nuclear disaster.", image: "https://images.cinelog.dev/chernobyl.jpg", trailer: "https://videos.cinelog.dev/chernobyl-trailer.mp4", rating: 9.4, episodes: 5, seasons: 1},
	{title: "Dark", description: "A missing child exposes a town's time-travel secrets.", image: "https://images.cinelog.dev/dark.jpg", trailer: "https://videos.cinelog.dev/dark-trailer.mp4", rating: 8.7, episodes: 26, seasons: 3},
	{title: "True Detective", description: "Anthology crime investigations across decades.", image: "https://images.cinelog.dev/truedetective.jpg", trailer: "https://videos.cinelog.dev/truedetective-trailer.mp4", rating: 8.9, episodes: 30, seasons: 4},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = store.Close(context.Background()) }()

	seedCatalog(ctx, store, entity.KindMovie, movies)
	seedCatalog(ctx, store, entity.KindSerie, series)
	seedDemoUser(ctx, store)
}

// seedCatalog upserts by title so reruns do not duplicate entries.
func seedCatalog(ctx context.Context, store *mongodb.Mongo, kind entity.MediaKind, items []seedMedia) {
	coll := store.Collection(kind.Collection())
	for _, it := range items {
		doc := bson.M{
			"title":       it.title,
			"description": it.description,
			"image":       it.image,
			"trailer":     it.trailer,
			"added_date":  time.Now(),
			"rating":      it.rating,
		}
		if kind == entity.KindSerie {
			doc["numberOfEpisodes"] = it.episodes
			doc["seasons"] = it.seasons
		}
		_, err := coll.UpdateOne(ctx,
			bson.M{"title": it.title},
			bson.M{"$setOnInsert": doc},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			log.Fatalf("failed to seed %s %q: %v", kind, it.title, err)
		}
	}
	fmt.Printf("seeded %d %s\n", len(items), kind.Collection())
}

func seedDemoUser(ctx context.Context, store *mongodb.Mongo) {
	username := "demo"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	_, err = store.Collection("users").UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$setOnInsert": bson.M{
			"username":       username,
			"email":          "demo@cinelog.dev",
			"password":       hash,
			"favoriteMovies": bson.A{},
			"favoriteSeries": bson.A{},
			"created_at":     time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Fatalf("failed to seed demo user: %v", err)
	}
	fmt.Printf("seeded user: username=%s password=%s\n", username, password)
}
