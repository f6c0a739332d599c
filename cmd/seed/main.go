// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"farina/internal/core/id"
	"farina/internal/core/types"
	"farina/internal/infrastructure/storage/postgres"
	"farina/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedAdminUser(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return errors.New("ADMIN_PASSWORD environment variable is required")
	}

	var existingID id.ID
	err := pool.Pool.QueryRow(ctx,
		`SELECT id FROM users WHERE username = $1`,
		username,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "username", username, "user_id", existingID)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check admin exists: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	userID := id.New()
	now := time.Now().UTC()

	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO users (
			id, username, nome, password_hash, ruolo, attivo,
			failed_login_attempts, created_at, updated_at, version
		)
		VALUES ($1, $2, 'Amministratore', $3, 'admin', true, 0, $4, $4, 1)
	`, userID, username, string(passwordHash), now)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "username", username, "user_id", userID)
	return nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	log.Info("seeding demo data...")

	// 1. Mulini
	mulini := []struct {
		nome     string
		telefono string
		email    string
	}{
		{"Molino Rossi", "0371 420001", "ordini@molinorossi.it"},
		{"Molino Bianchi", "0382 550002", "info@molinobianchi.it"},
	}

	mulinoIDs := make(map[string]id.ID)
	for _, m := range mulini {
		mid := id.New()
		tag, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_mulini (id, nome, telefono, email, version, deletion_mark)
			VALUES ($1, $2, $3, $4, 1, false)
			ON CONFLICT (nome) WHERE deletion_mark = FALSE DO NOTHING
		`, mid, m.nome, m.telefono, m.email)
		if err != nil {
			log.Warnw("failed to seed mulino", "nome", m.nome, "error", err)
			continue
		}
		if tag.RowsAffected() == 0 {
			if err := pool.Pool.QueryRow(ctx,
				`SELECT id FROM cat_mulini WHERE nome = $1 AND deletion_mark = FALSE`,
				m.nome,
			).Scan(&mid); err != nil {
				log.Warnw("failed to fetch existing mulino", "nome", m.nome, "error", err)
				continue
			}
		}
		mulinoIDs[m.nome] = mid
	}

	// 2. Prodotti (provvigione defaults to 3% percentuale)
	prodotti := []string{
		"Farina 00",
		"Farina 0",
		"Farina Integrale",
		"Semola Rimacinata",
		"Farina Manitoba",
	}

	for _, nome := range prodotti {
		_, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_prodotti (id, nome, tipo_provvigione, valore_provvigione, version, deletion_mark)
			VALUES ($1, $2, 'percentuale', 3, 1, false)
			ON CONFLICT (nome) WHERE deletion_mark = FALSE DO NOTHING
		`, id.New(), nome)
		if err != nil {
			log.Warnw("failed to seed prodotto", "nome", nome, "error", err)
		}
	}

	// 3. Trasportatori
	trasportatori := []struct {
		nome     string
		telefono string
	}{
		{"Autotrasporti Verdi", "0371 990011"},
		{"TransPadana", "02 8844002"},
	}

	for _, t := range trasportatori {
		_, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_trasportatori (id, nome, telefono, version, deletion_mark)
			VALUES ($1, $2, $3, 1, false)
			ON CONFLICT (nome) WHERE deletion_mark = FALSE DO NOTHING
		`, id.New(), t.nome, t.telefono)
		if err != nil {
			log.Warnw("failed to seed trasportatore", "nome", t.nome, "error", err)
		}
	}

	// 4. Clienti
	clienti := []struct {
		nome          string
		partitaIVA    string
		comune        string
		provincia     string
		riba          bool
		pedanaQuintal int64
	}{
		{"Panificio Da Mario", "01234560155", "Lodi", "LO", true, 10},
		{"Pizzeria Bella Napoli", "09876540963", "Crema", "CR", false, 8},
		{"Forno Antico", "05556660198", "Pavia", "PV", true, 12},
	}

	for _, cl := range clienti {
		pedana := types.NewQuintaliFromInt(cl.pedanaQuintal)
		_, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_clienti (
				id, nome, partita_iva, comune, provincia, riba, pedana_standard,
				version, deletion_mark
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, 1, false)
			ON CONFLICT (nome) WHERE deletion_mark = FALSE DO NOTHING
		`, id.New(), cl.nome, cl.partitaIVA, cl.comune, cl.provincia, cl.riba, pedana)
		if err != nil {
			log.Warnw("failed to seed cliente", "nome", cl.nome, "error", err)
		}
	}

	log.Info("demo data seeded successfully")
	return nil
}
