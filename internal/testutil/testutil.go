package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dom/hxh-catalog/internal/api"
	"github.com/dom/hxh-catalog/internal/config"
	"github.com/dom/hxh-catalog/internal/repository"
	repoMongo "github.com/dom/hxh-catalog/internal/repository/mongodb"
	repoPostgres "github.com/dom/hxh-catalog/internal/repository/postgres"
	"github.com/dom/hxh-catalog/internal/service"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go"
	tcMongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Backends lists every storage engine, for tests that must hold on both.
var Backends = []config.Backend{config.BackendRelational, config.BackendDocument}

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_hxh"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := repoPostgres.Migrate(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup closes the pool and terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.DB != nil {
		repoPostgres.Close(tdb.DB)
	}
	if tdb.Container != nil {
		tdb.Container.Terminate(context.Background())
	}
}

// Truncate clears the characters table and restarts its id sequence
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	if err := tdb.DB.Exec("TRUNCATE TABLE characters RESTART IDENTITY CASCADE").Error; err != nil {
		t.Fatalf("failed to truncate characters: %v", err)
	}
}

// TestMongo manages a testcontainers MongoDB instance
type TestMongo struct {
	Container *tcMongo.MongoDBContainer
	Client    *mongo.Client
	DB        *mongo.Database
	URI       string
}

// Collection is the collection every test repository is built on.
const Collection = "characters"

// NewTestMongo creates a new MongoDB testcontainer with a fresh database
func NewTestMongo(t *testing.T) *TestMongo {
	t.Helper()

	ctx := context.Background()

	container, err := tcMongo.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("failed to start mongodb container: %v", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := repoMongo.NewConnection(connectCtx, uri)
	if err != nil {
		t.Fatalf("failed to connect to mongodb: %v", err)
	}

	testMongo := &TestMongo{
		Container: container,
		Client:    client,
		DB:        client.Database("test_hxh_" + uuid.New().String()[:8]),
		URI:       uri,
	}

	t.Cleanup(func() {
		testMongo.Cleanup()
	})

	return testMongo
}

// Cleanup disconnects and terminates the container
func (tm *TestMongo) Cleanup() {
	ctx := context.Background()
	if tm.Client != nil {
		tm.Client.Disconnect(ctx)
	}
	if tm.Container != nil {
		tm.Container.Terminate(ctx)
	}
}

// Truncate removes every character document
func (tm *TestMongo) Truncate(t *testing.T) {
	t.Helper()

	if _, err := tm.DB.Collection(Collection).DeleteMany(context.Background(), bson.D{}); err != nil {
		t.Fatalf("failed to truncate characters: %v", err)
	}
}

// NewTestRepositories starts the engine for backend and returns repositories over
// it together with a function that empties the store.
func NewTestRepositories(t *testing.T, backend config.Backend) (*repository.Repositories, func(*testing.T)) {
	t.Helper()

	switch backend {
	case config.BackendRelational:
		testDB := NewTestDB(t)
		return repoPostgres.NewRepositories(testDB.DB), testDB.Truncate
	case config.BackendDocument:
		testMongo := NewTestMongo(t)
		return repoMongo.NewRepositories(testMongo.DB, Collection), testMongo.Truncate
	default:
		t.Fatalf("unknown backend %q", backend)
		return nil, nil
	}
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server   *httptest.Server
	Backend  config.Backend
	Repos    *repository.Repositories
	Services *service.Services
	truncate func(*testing.T)
}

// NewTestServer creates a complete test server on the given backend
func NewTestServer(t *testing.T, backend config.Backend) *TestServer {
	t.Helper()

	repos, truncate := NewTestRepositories(t, backend)

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	services := service.NewServices(repos)
	router := api.NewRouter(services, backend, log)

	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		Backend:  backend,
		Repos:    repos,
		Services: services,
		truncate: truncate,
	}

	t.Cleanup(func() {
		server.Close()
	})

	return ts
}

// Truncate empties the backing store between subtests
func (ts *TestServer) Truncate(t *testing.T) {
	t.Helper()
	ts.truncate(t)
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// URL returns the full URL for a given path
func (ts *TestServer) URL(path string) string {
	return fmt.Sprintf("%s%s", ts.Server.URL, path)
}

// CharacterURL returns the URL of a single character
func (ts *TestServer) CharacterURL(id string) string {
	return ts.URL("/characters/" + id)
}

// MissingID returns an identifier that is well formed for the backend but was
// never assigned.
func (ts *TestServer) MissingID() string {
	if ts.Backend == config.BackendDocument {
		return "507f1f77bcf86cd799439011"
	}
	return "999999"
}
