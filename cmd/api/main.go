package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/domain/entity"
	handlerHttp "github.com/desparches/backend/internal/handler/http"
	"github.com/desparches/backend/internal/infrastructure/clock"
	"github.com/desparches/backend/internal/infrastructure/config"
	"github.com/desparches/backend/internal/infrastructure/fixture"
	"github.com/desparches/backend/internal/infrastructure/idgen"
	"github.com/desparches/backend/internal/infrastructure/logger"
	"github.com/desparches/backend/internal/infrastructure/recordstore"
	"github.com/desparches/backend/internal/infrastructure/validator"
	"github.com/desparches/backend/internal/repository"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewZapLogger()

	store, cleanup, err := newRecordStore(appConfig)
	if err != nil {
		log.Fatalf("Failed to open record store: %v", err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	// Dependency Injection: Services
	appValidator := validator.NewValidator()
	idGenerator := idgen.NewGenerator()
	appClock := clock.New()

	// Dependency Injection: Repositories
	userRepo := repository.NewUserRepository(store, appLogger, idGenerator, appValidator, appConfig.BootstrapAdminEmail, fixture.Users())
	eventRepo := repository.NewEventRepository(store, appLogger, idGenerator, appClock, func(now time.Time) []entity.Event {
		return fixture.Events(now, appConfig.SeedEventCount)
	})
	bookmarkRepo := repository.NewBookmarkRepository(store, appLogger)
	forumRepo := repository.NewForumRepository(store, appLogger, idGenerator, appClock)
	reviewRepo := repository.NewReviewRepository(store, appLogger, idGenerator, appClock, appValidator)
	postRepo := repository.NewPostRepository(store, appLogger, idGenerator, appClock)
	chatRepo := repository.NewChatRepository(store, appLogger, idGenerator, appClock)
	adminMessageRepo := repository.NewAdminMessageRepository(store, appLogger, idGenerator, appClock)

	// Initialize Gin router
	router := gin.Default()

	appRouter := handlerHttp.NewRouter(userRepo, eventRepo, bookmarkRepo, forumRepo, reviewRepo, postRepo, chatRepo, adminMessageRepo)
	appRouter.SetupRoutes(router)

	appLogger.Infof("listening on port %s with %s record store", appConfig.Port, appConfig.StoreBackend)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newRecordStore builds the record store selected by STORE_BACKEND. The
// returned cleanup closes the backend connection, if any.
func newRecordStore(cfg *config.Config) (contract.IRecordStore, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return recordstore.NewMemoryStore(), nil, nil
	case config.BackendFile:
		return recordstore.NewFileStore(cfg.DataDir), nil, nil
	case config.BackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		rdb := redis.NewClient(opts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, nil, err
		}
		return recordstore.NewRedisStore(rdb), func() { _ = rdb.Close() }, nil
	case config.BackendMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(ctx, mongooptions.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, nil, err
		}
		if err := client.Ping(ctx, nil); err != nil {
			return nil, nil, err
		}
		collection := client.Database(cfg.MongoDBName).Collection("records")
		cleanup := func() { _ = client.Disconnect(context.Background()) }
		return recordstore.NewMongoStore(collection), cleanup, nil
	default:
		return recordstore.NewFileStore(cfg.DataDir), nil, nil
	}
}
