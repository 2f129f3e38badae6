// widgets_test.go provides the shared test database helper for the
// service integration tests. Tests are skipped if PostgreSQL is not
// available.
package widgets

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"newschools/internal/assets"
	"newschools/internal/database"
	"newschools/internal/models"
)

func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "newschools")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "newschools")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testService opens the test database, migrates it and returns a service
// with asset paths rooted at /storage and no site cache.
func testService(t *testing.T) (*Service, *sql.DB) {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return New(db, nil, assets.NewNormalizer("/storage")), db
}

// testWidget creates an instance on a fresh random site and registers a
// hard delete so the FK cascades clean up everything the test wrote.
func testWidget(t *testing.T, svc *Service, db *sql.DB, variant models.Variant) *models.WidgetInstance {
	t.Helper()

	w, err := svc.CreateInstance(context.Background(), &models.WidgetInstance{
		SiteID:    uuid.New(),
		Variant:   variant,
		Position:  "content",
		Name:      "test " + string(variant),
		SortOrder: 1,
		IsActive:  true,
		IsVisible: true,
	})
	if err != nil {
		t.Fatalf("create test widget: %v", err)
	}

	t.Cleanup(func() {
		db.Exec("DELETE FROM site_widgets WHERE id = $1", w.ID)
	})
	return w
}
