package main

import (
	"community_bbs/internal/pkg/config"
	"community_bbs/pkg/database"
	"errors"
	"flag"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var (
		source = flag.String("source", "file://migrations", "Migration source URL")
		down   = flag.Bool("down", false, "Roll back one migration instead of applying all")
	)
	flag.Parse()

	config.LoadConfig()

	m, err := migrate.New(*source, database.MigrateURL(config.GlobalConfig.Database))
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	if *down {
		if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal(err)
		}
		log.Println("Rollback successful")
		return
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		// dirty 状态时回退到上一个干净版本后重试
		var dirty migrate.ErrDirty
		if !errors.As(err, &dirty) {
			log.Fatal(err)
		}
		log.Printf("Database is dirty at version %d, forcing previous version...", dirty.Version)
		if err := m.Force(dirty.Version - 1); err != nil {
			log.Fatal("Failed to force version:", err)
		}
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal(err)
		}
	}

	log.Println("Migration successful")
}
