package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/navikt/isarbeidsuforhet-sub000/controllers"
	"github.com/navikt/isarbeidsuforhet-sub000/daemons"
	"github.com/navikt/isarbeidsuforhet-sub000/database"
	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/navikt/isarbeidsuforhet-sub000/database/repositories"
	"github.com/navikt/isarbeidsuforhet-sub000/echohttp"
	"github.com/navikt/isarbeidsuforhet-sub000/integrations/azuread"
	"github.com/navikt/isarbeidsuforhet-sub000/integrations/dokarkiv"
	"github.com/navikt/isarbeidsuforhet-sub000/integrations/pdfgen"
	"github.com/navikt/isarbeidsuforhet-sub000/integrations/pdl"
	"github.com/navikt/isarbeidsuforhet-sub000/integrations/veiledertilgang"
	"github.com/navikt/isarbeidsuforhet-sub000/pubsub"
	"github.com/navikt/isarbeidsuforhet-sub000/router"
	"github.com/navikt/isarbeidsuforhet-sub000/services"
	"github.com/navikt/isarbeidsuforhet-sub000/shared"
)

var release string // Will be filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	db, err := database.NewConnectionFromEnv()
	if err != nil {
		slog.Error("failed to setup database connection", "err", err)
		panic(err)
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := db.AutoMigrate(
			&models.Vurdering{},
			&models.Varsel{},
			&models.VurderingPdf{},
			&models.Config{},
		); err != nil {
			slog.Error("failed to run database migrations", "err", err)
			panic(err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	azureClient := azuread.NewClient(
		os.Getenv("AZURE_OPENID_CONFIG_TOKEN_ENDPOINT"),
		os.Getenv("AZURE_APP_CLIENT_ID"),
		os.Getenv("AZURE_APP_CLIENT_SECRET"),
	)

	pdfGenClient := pdfgen.NewPdfGenClient(os.Getenv("PDFGEN_URL"))
	pdlClient := pdl.NewPdlClient(
		os.Getenv("PDL_URL"),
		azureClient.TokenProviderFor(os.Getenv("PDL_SCOPE")),
	)
	dokarkivClient := dokarkiv.NewDokarkivClient(
		os.Getenv("DOKARKIV_URL"),
		azureClient.TokenProviderFor(os.Getenv("DOKARKIV_SCOPE")),
		dokarkiv.WithRetry(),
	)
	tilgangClient := veiledertilgang.NewVeilederTilgangClient(os.Getenv("ISTILGANGSKONTROLL_URL"))

	kafkaConfig := pubsub.KafkaConfigFromEnv()
	producer, err := pubsub.NewProducer(kafkaConfig)
	if err != nil {
		slog.Error("failed to create kafka producer", "err", err)
		panic(err)
	}
	defer producer.Close()
	vurderingProducer := pubsub.NewVurderingProducer(producer)

	repository := repositories.NewVurderingRepository(db)
	vurderingService := services.NewVurderingService(
		repository,
		pdfGenClient,
		pdlClient,
		dokarkivClient,
		vurderingProducer,
	)
	configService := services.NewConfigService(db)

	identhendelseConsumer, err := pubsub.NewIdenthendelseConsumer(kafkaConfig, repository)
	if err != nil {
		slog.Error("failed to create identhendelse consumer", "err", err)
		panic(err)
	}
	identhendelseConsumer.Start(ctx)

	leaderElector := services.NewDatabaseLeaderElector(ctx, configService)
	daemons.NewDaemonRunner(vurderingService, configService, leaderElector).Start(ctx)

	server := echohttp.Server()
	router.Setup(server.Group(""), controllers.NewVurderingController(vurderingService, tilgangClient))

	slog.Error("failed to start server", "err", server.Start(":8080").Error())
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              os.Getenv("ERROR_TRACKING_DSN"),
		Environment:      environment,
		Release:          release,
		Debug:            environment == "dev",
		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("could not initialize sentry", "err", err)
	}
}
