package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rentx-lk/rentx-api/internal/auth"
	"github.com/rentx-lk/rentx-api/internal/booking"
	"github.com/rentx-lk/rentx-api/internal/catalog"
	"github.com/rentx-lk/rentx-api/internal/clock"
	"github.com/rentx-lk/rentx-api/internal/config"
	"github.com/rentx-lk/rentx-api/internal/db"
	"github.com/rentx-lk/rentx-api/internal/events"
	"github.com/rentx-lk/rentx-api/internal/handlers"
	"github.com/rentx-lk/rentx-api/internal/models"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const shutdownTimeout = 5 * time.Second

type storage struct {
	users        db.UserCollection
	reservations db.ReservationCollection
	close        func()
}

// openStorage connects to MongoDB when a URI is configured and falls back to
// in-memory collections otherwise.
func openStorage(ctx context.Context, cfg config.Config) (storage, error) {
	if cfg.MongoURI == "" {
		log.Warn("MONGO_URI not set, accounts and reservations are kept in memory")
		return storage{
			users:        db.NewMemoryUserCollection(),
			reservations: db.NewMemoryReservationCollection(),
			close:        func() {},
		}, nil
	}

	client, err := db.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		return storage{}, err
	}
	database := client.Database(cfg.MongoDatabase)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		client.Disconnect(context.Background())
		return storage{}, err
	}
	log.WithField("database", cfg.MongoDatabase).Info("Connected to MongoDB")

	return storage{
		users:        &db.MongoUserCollection{Collection: database.Collection(db.UsersCollection)},
		reservations: &db.MongoReservationCollection{Collection: database.Collection(db.ReservationsCollection)},
		close: func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.WithError(err).Warn("Failed to disconnect from MongoDB")
			}
		},
	}, nil
}

// openAvailability reads blocked days from Redis when configured, otherwise
// from the fixed demo pattern.
func openAvailability(ctx context.Context, cfg config.Config) (booking.Availability, func(), error) {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, using the fixed demo availability")
		return booking.NewFixedAvailability(), func() {}, nil
	}

	client, err := db.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, nil, err
	}
	log.WithField("addr", cfg.RedisAddr).Info("Connected to Redis")
	return db.NewRedisAvailability(client), func() { client.Close() }, nil
}

// openPublisher connects to the MQTT broker when configured.
func openPublisher(cfg config.Config) (events.Publisher, func(), error) {
	if cfg.MQTTBroker == "" {
		log.Info("MQTT_BROKER not set, reservation events are dropped")
		return events.NopPublisher{}, func() {}, nil
	}

	client, err := events.ConnectMQTT(cfg.MQTTBroker, "rentx-api-"+uuid.NewString()[:8])
	if err != nil {
		return nil, nil, err
	}
	log.WithFields(log.Fields{"broker": cfg.MQTTBroker, "topic": cfg.MQTTTopic}).Info("Connected to MQTT broker")
	return events.NewMQTTPublisher(client, cfg.MQTTTopic), func() { client.Disconnect(250) }, nil
}

// seedAdmin creates the configured admin account if it does not exist yet.
func seedAdmin(ctx context.Context, cfg config.Config, authService *auth.Service, users db.UserCollection) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}
	if _, err := users.FindUserByEmail(ctx, cfg.AdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	hash, err := authService.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	err = users.InsertUser(ctx, models.User{
		ID:           primitive.NewObjectID(),
		FullName:     "RentX Admin",
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
	if err != nil && !errors.Is(err, db.ErrDuplicate) {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	log.WithField("email", cfg.AdminEmail).Info("Admin account ready")
	return nil
}

func main() {
	cfg := config.Load()
	cfg.ConfigureLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := catalog.New(catalog.Fixture)
	if err != nil {
		log.WithError(err).Fatal("Invalid vehicle fixture")
	}

	st, err := openStorage(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to open storage")
	}
	defer st.close()

	availability, closeAvailability, err := openAvailability(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to open availability source")
	}
	defer closeAvailability()

	publisher, closePublisher, err := openPublisher(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MQTT broker")
	}
	defer closePublisher()

	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	if err := seedAdmin(ctx, cfg, authService, st.users); err != nil {
		log.WithError(err).Fatal("Failed to seed admin account")
	}

	router := handlers.NewRouter(handlers.Deps{
		Store:        store,
		Availability: availability,
		Clock:        clock.NewSystem(),
		Users:        st.users,
		Reservations: st.reservations,
		Publisher:    publisher,
		AuthService:  authService,
		CORSOrigins:  cfg.CORSOrigins,
		TrustProxy:   cfg.TrustProxy,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(log.Fields{"port": cfg.Port, "vehicles": store.Len()}).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down the server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
	log.Info("Server exiting")
}
