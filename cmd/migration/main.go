package main

import (
	"flag"
	"log"
	"os"

	"github.com/hugohenrick/nota-fiscal/internal/infrastructure/config"
	"github.com/hugohenrick/nota-fiscal/internal/infrastructure/database"
	"github.com/hugohenrick/nota-fiscal/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	down := flag.Int("down", 0, "número de migrações a desfazer")
	flag.Parse()

	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	zl, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output})
	if err != nil {
		log.Fatalf("Erro ao criar logger: %v", err)
	}
	defer zl.Sync()

	databaseURL := database.NewPostgresConfig(cfg.Database).MigrationURL()

	if *down > 0 {
		if err := database.RollbackMigrations(databaseURL, cfg.Migrations.Path, *down, zl); err != nil {
			zl.Error("erro ao desfazer migrações", "error", err)
			os.Exit(1)
		}
		zl.Info("migrações desfeitas com sucesso", "steps", *down)
		return
	}

	if err := database.RunMigrations(databaseURL, cfg.Migrations.Path, zl); err != nil {
		zl.Error("erro ao executar migrações", "error", err)
		os.Exit(1)
	}

	zl.Info("migrações executadas com sucesso")
}
