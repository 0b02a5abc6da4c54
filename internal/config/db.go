package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConfig holds database connection parameters
type DBConfig struct {
	DSN string
}

// LoadDBConfig loads database configuration from environment variables
func LoadDBConfig() (*DBConfig, error) {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return nil, fmt.Errorf("database environment variables not set (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	return &DBConfig{DSN: dsn}, nil
}

// ConnectDB establishes a connection to the PostgreSQL database
func ConnectDB(cfg *DBConfig) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	// Retry connecting to the database a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), cfg.DSN)
		if err == nil {
			err = pool.Ping(context.Background())
			if err == nil {
				log.Println("Successfully connected to PostgreSQL!")
				return pool, nil
			}
		}
		log.Printf("Failed to connect to database (attempt %d/%d): %v. Retrying in %v...", i+1, maxRetries, err, retryInterval)
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// AutoMigrate creates tables if they don't exist
func AutoMigrate(db *pgxpool.Pool) error {
	sql := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		phone TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS schedules (
		id BIGSERIAL PRIMARY KEY,
		subject TEXT NOT NULL,
		day TEXT NOT NULL,
		time TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS tasks (
		id BIGSERIAL PRIMARY KEY,
		subject TEXT NOT NULL,
		name TEXT NOT NULL,
		deadline TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		done INTEGER NOT NULL DEFAULT 0 CHECK (done IN (0, 1))
	);
	`
	_, err := db.Exec(context.Background(), sql)
	if err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	log.Println("AutoMigrate applied successfully")
	return nil
}

// SeedData inserts sample schedules and tasks when the respective table is
// empty. Each seed is one INSERT ... SELECT guarded by an emptiness
// predicate, so concurrent initializers cannot double-seed.
func SeedData(db *pgxpool.Pool) error {
	seedSchedules := `
	INSERT INTO schedules (subject, day, time, notes)
	SELECT v.subject, v.day, v.time, v.notes
	FROM (VALUES
		('Matematika', 'Senin', '08:00', 'Ruang 101'),
		('Fisika', 'Rabu', '10:00', ''),
		('Bahasa Inggris', 'Jumat', '13:00', 'Bawa kamus')
	) AS v(subject, day, time, notes)
	WHERE NOT EXISTS (SELECT 1 FROM schedules);
	`
	if _, err := db.Exec(context.Background(), seedSchedules); err != nil {
		return fmt.Errorf("unable to seed schedules: %w", err)
	}

	seedTasks := `
	INSERT INTO tasks (subject, name, deadline, notes, done)
	SELECT v.subject, v.name, v.deadline, v.notes, v.done
	FROM (VALUES
		('Matematika', 'Latihan Bab 3', '2025-10-06', '', 0),
		('Fisika', 'Laporan praktikum', '2025-10-10', 'Format PDF', 0),
		('Bahasa Inggris', 'Essay 500 kata', '2025-09-30', '', 1)
	) AS v(subject, name, deadline, notes, done)
	WHERE NOT EXISTS (SELECT 1 FROM tasks);
	`
	if _, err := db.Exec(context.Background(), seedTasks); err != nil {
		return fmt.Errorf("unable to seed tasks: %w", err)
	}

	log.Println("Seed data checked")
	return nil
}
