package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"quotidepense-be/config"
	"quotidepense-be/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@quotidepense.app"
	password := "password123"
	name := "Demo"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, name).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	now := time.Now()
	samples := []struct {
		amount      float64
		category    string
		description string
		daysAgo     int
	}{
		{12.50, "Nourriture", "déjeuner", 0},
		{34.90, "Transport", "plein d'essence", 1},
		{8.00, "Loisirs", "cinéma", 2},
		{56.30, "Courses", "supermarché", 3},
		{19.99, "Abonnements", "streaming", 5},
	}
	for _, s := range samples {
		if _, err := db.Exec(`
			INSERT INTO expenses (user_id, amount, category, description, date)
			VALUES ($1, $2, $3, $4, $5)
		`, id, s.amount, s.category, s.description, now.AddDate(0, 0, -s.daysAgo)); err != nil {
			log.Fatalf("failed to seed expense: %v", err)
		}
	}
	fmt.Printf("seeded %d expenses\n", len(samples))
}
