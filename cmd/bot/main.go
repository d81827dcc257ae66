package main

import (
	"context"
	"log"
	"os"

	"participantbot/internal/adapters/discord"
	"participantbot/internal/config"
	"participantbot/internal/infrastructure/database"
	"participantbot/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Erreur lors des migrations: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
	}
	defer pool.Close()

	participantRepo := database.NewParticipantRepository(pool)
	translator, err := i18n.NewTranslator(cfg.DefaultLocale, i18n.DefaultCatalogs...)
	if err != nil {
		log.Fatalf("❌ Erreur lors du chargement des traductions: %v", err)
	}

	bot, err := discord.NewBot(cfg, participantRepo, translator)
	if err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
	if err := bot.Start(); err != nil {
		log.Printf("❌ Erreur lors du démarrage du bot: %v", err)
		os.Exit(1)
	}
}
