package router

import (
	"github.com/labstack/echo/v4"
	"github.com/navikt/isarbeidsuforhet-sub000/controllers"
	"github.com/navikt/isarbeidsuforhet-sub000/middlewares"
	"github.com/navikt/isarbeidsuforhet-sub000/shared"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup registers the health probes, the metrics endpoint and the
// authenticated vurdering routes on the server.
func Setup(server shared.Server, vurderingController *controllers.VurderingController) {
	server.GET("/is_alive", func(ctx shared.Context) error {
		return ctx.String(200, "I'm alive! :)")
	})
	server.GET("/is_ready", func(ctx shared.Context) error {
		return ctx.String(200, "I'm ready! :)")
	})
	server.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	apiV1 := server.Group(
		"/api/internad/v1/arbeidsuforhet",
		middlewares.CallIDMiddleware(),
		middlewares.VeilederSessionMiddleware(),
	)

	apiV1.GET("/vurderinger", vurderingController.GetVurderinger)
	apiV1.POST("/vurderinger", vurderingController.CreateVurdering)
	apiV1.POST("/get-vurderinger", vurderingController.GetLatestVurderinger)
}
