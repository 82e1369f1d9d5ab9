package shared

import (
	"strings"

	"github.com/google/uuid"
	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
)

const (
	PersonidentHeader = "nav-personident"
	CallIDHeader      = "X-Call-Id"

	navIdentKey = "navIdent"
	callIDKey   = "callID"
)

// GetPersonident reads and validates the subject identifier header.
func GetPersonident(ctx Context) (models.Personident, error) {
	return models.NewPersonident(ctx.Request().Header.Get(PersonidentHeader))
}

func SetNAVIdent(ctx Context, navIdent string) {
	ctx.Set(navIdentKey, navIdent)
}

// GetNAVIdent returns the authenticated caseworker identity set by the
// session middleware.
func GetNAVIdent(ctx Context) string {
	navIdent, _ := ctx.Get(navIdentKey).(string)
	return navIdent
}

func SetCallID(ctx Context, callID string) {
	ctx.Set(callIDKey, callID)
}

// GetCallID returns the request correlation id, generating one if the caller
// did not supply any.
func GetCallID(ctx Context) string {
	if callID, ok := ctx.Get(callIDKey).(string); ok && callID != "" {
		return callID
	}
	return uuid.New().String()
}

// GetBearerToken returns the raw bearer token of the inbound request, used
// for on-behalf-of calls to the access-control gateway.
func GetBearerToken(ctx Context) string {
	header := ctx.Request().Header.Get("Authorization")
	return strings.TrimPrefix(header, "Bearer ")
}
