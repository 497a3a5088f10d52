package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mud-ali/DIHacks2025/api"
	"github.com/mud-ali/DIHacks2025/external/aladhan"
	"github.com/mud-ali/DIHacks2025/geo"
	"github.com/mud-ali/DIHacks2025/prayer"
	"github.com/mud-ali/DIHacks2025/schema"
	"github.com/mud-ali/DIHacks2025/store"
)

func initConfig() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("masjid")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.address", ":3000")
	viper.SetDefault("mongo.conn", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "masjid")
	viper.SetDefault("geocoding.endpoint", "https://geocode.maps.co")
	viper.SetDefault("aladhan.endpoint", "https://api.aladhan.com")
	viper.SetDefault("log.level", "info")
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		logLevel = log.InfoLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}

func main() {
	initConfig()
	initLog()

	if viper.GetString("jwt.secret") == "" {
		log.Fatal("jwt secret is not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connURI := viper.GetString("mongo.conn")
	database := viper.GetString("mongo.database")

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(connURI))
	if err != nil {
		log.WithError(err).Fatal("connect to mongodb")
	}

	if err := schema.NewMongoDBIndexer(connURI, database).IndexAll(); err != nil {
		log.WithError(err).Fatal("create mongodb indexes")
	}

	mongoStore := store.NewMongoStore(mongoClient, database)
	if err := mongoStore.Ping(); err != nil {
		log.WithError(err).Fatal("ping mongodb")
	}

	geo.SetLocationResolver(geo.NewGeocodeResolver(
		viper.GetString("geocoding.endpoint"),
		viper.GetString("geocoding.apikey"),
	))

	prayerFetcher := prayer.NewFetcher(aladhan.New(viper.GetString("aladhan.endpoint")))

	server := api.NewServer(
		mongoStore,
		prayerFetcher,
		viper.GetString("jwt.secret"),
		viper.GetBool("log.trace"),
	)

	addr := viper.GetString("server.address")
	log.WithField("addr", addr).Info("server starting")
	if err := server.Run(addr); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server stopped")
	}
}
