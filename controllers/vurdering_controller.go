package controllers

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/navikt/isarbeidsuforhet-sub000/dtos"
	"github.com/navikt/isarbeidsuforhet-sub000/shared"
)

type VurderingController struct {
	service       shared.VurderingService
	tilgangClient shared.VeilederTilgangClient
}

func NewVurderingController(service shared.VurderingService, tilgangClient shared.VeilederTilgangClient) *VurderingController {
	return &VurderingController{
		service:       service,
		tilgangClient: tilgangClient,
	}
}

func (v *VurderingController) GetVurderinger(ctx shared.Context) error {
	personident, err := shared.GetPersonident(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "invalid or missing nav-personident header").WithInternal(err)
	}

	if err := v.checkAccess(ctx, personident); err != nil {
		return err
	}

	vurderinger, err := v.service.GetVurderinger(personident)
	if err != nil {
		return echo.NewHTTPError(500, "could not read vurderinger").WithInternal(err)
	}

	return ctx.JSON(200, vurderinger)
}

func (v *VurderingController) CreateVurdering(ctx shared.Context) error {
	personident, err := shared.GetPersonident(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "invalid or missing nav-personident header").WithInternal(err)
	}

	if err := v.checkAccess(ctx, personident); err != nil {
		return err
	}

	var req dtos.CreateVurderingRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	vurdering, err := v.service.CreateVurdering(
		ctx.Request().Context(),
		shared.GetCallID(ctx),
		req.ToInput(personident, shared.GetNAVIdent(ctx)),
	)
	if err != nil {
		if models.IsValidationError(err) {
			return echo.NewHTTPError(400, err.Error())
		}
		return echo.NewHTTPError(500, "could not create vurdering").WithInternal(err)
	}

	return ctx.JSON(201, vurdering)
}

// GetLatestVurderinger returns the newest vurdering per requested person,
// restricted to the persons the caseworker may see. Persons without access
// are left out of the response, not flagged.
func (v *VurderingController) GetLatestVurderinger(ctx shared.Context) error {
	var req dtos.GetVurderingerRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	personidenter := make([]models.Personident, 0, len(req.Personidenter))
	for _, ident := range req.Personidenter {
		personident, err := models.NewPersonident(ident)
		if err != nil {
			return echo.NewHTTPError(400, fmt.Sprintf("invalid personident %q", ident))
		}
		personidenter = append(personidenter, personident)
	}

	accessible, err := v.tilgangClient.FilterAccessible(
		ctx.Request().Context(),
		shared.GetCallID(ctx),
		shared.GetBearerToken(ctx),
		personidenter,
	)
	if err != nil {
		return echo.NewHTTPError(500, "could not check person access").WithInternal(err)
	}

	latest, err := v.service.GetLatestVurderinger(accessible)
	if err != nil {
		return echo.NewHTTPError(500, "could not read vurderinger").WithInternal(err)
	}

	if len(latest) == 0 {
		return ctx.NoContent(204)
	}

	response := make(map[string]models.Vurdering, len(latest))
	for personident, vurdering := range latest {
		response[personident.String()] = vurdering
	}
	return ctx.JSON(200, response)
}

func (v *VurderingController) checkAccess(ctx shared.Context, personident models.Personident) error {
	hasAccess, err := v.tilgangClient.HasAccess(
		ctx.Request().Context(),
		shared.GetCallID(ctx),
		shared.GetBearerToken(ctx),
		personident,
	)
	if err != nil {
		return echo.NewHTTPError(500, "could not check person access").WithInternal(err)
	}
	if !hasAccess {
		return echo.NewHTTPError(403, "denied access to person")
	}
	return nil
}
