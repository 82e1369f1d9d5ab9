package integrationtestutil

import (
	"context"
	"log"
	"log/slog"

	"github.com/navikt/isarbeidsuforhet-sub000/database"
	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/navikt/isarbeidsuforhet-sub000/shared"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func InitDatabaseContainer() (shared.DB, func()) {
	ctx := context.Background()

	dbName := "isarbeidsuforhet"
	dbUser := "user"
	dbPassword := "password"

	postgresC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)

	terminate := func() {
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	if err != nil {
		slog.Info("failed to start postgres container", "error", err)
		panic(err)
	}

	host, _ := postgresC.Host(ctx)
	port, _ := postgresC.MappedPort(ctx, "5432")

	db, err := database.NewConnection(host, dbUser, dbPassword, dbName, port.Port())
	if err != nil {
		log.Printf("failed to connect to database: %s", err)
		panic(err)
	}

	if err := db.AutoMigrate(
		&models.Vurdering{},
		&models.Varsel{},
		&models.VurderingPdf{},
		&models.Config{},
	); err != nil {
		log.Printf("failed to run migrations: %s", err)
		panic(err)
	}

	return db, terminate
}
