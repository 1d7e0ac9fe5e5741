//go:build integration

package salaries

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"docman/internal/platform/config"
	"docman/internal/platform/db"
)

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, config.Config{DatabaseURL: url})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.Migrate(ctx, pool, "../../../migrations"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := pool.Exec(ctx, "TRUNCATE attachments, salaries, documents, employees, audit_log RESTART IDENTITY CASCADE"); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return pool
}

func TestExistsForMonthAgainstLiveRows(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	store := NewStore(pool)

	var employeeID int64
	err := pool.QueryRow(ctx, "INSERT INTO employees (name, email) VALUES ($1, $2) RETURNING id",
		"Sara", "sara@example.com").Scan(&employeeID)
	if err != nil {
		t.Fatalf("insert employee: %v", err)
	}

	if _, err := store.Insert(ctx, Salary{
		EmployeeID:  employeeID,
		BasicSalary: 5000,
		NetSalary:   5000,
		PaymentDate: "2024-03-15",
	}); err != nil {
		t.Fatalf("insert salary: %v", err)
	}

	exists, err := store.ExistsForMonth(ctx, employeeID, 2024, 3)
	if err != nil {
		t.Fatalf("exists check: %v", err)
	}
	if !exists {
		t.Fatal("expected a salary in 2024-03")
	}

	exists, err = store.ExistsForMonth(ctx, employeeID, 2024, 4)
	if err != nil {
		t.Fatalf("exists check: %v", err)
	}
	if exists {
		t.Fatal("expected no salary in 2024-04")
	}

	exists, err = store.ExistsForMonth(ctx, employeeID+1, 2024, 3)
	if err != nil {
		t.Fatalf("exists check: %v", err)
	}
	if exists {
		t.Fatal("expected no salary for another employee")
	}
}
