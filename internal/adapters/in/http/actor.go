package http

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/application/usecases/commands"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

// Identity headers resolved by the gateway in front of this service.
const (
	HeaderActorRole = "X-Actor-Role"
	HeaderActorID   = "X-Actor-ID"
)

// actorFromRequest builds the acting identity from the gateway headers.
// Both headers are required on every authenticated endpoint.
func actorFromRequest(ctx echo.Context) (commands.Actor, error) {
	role := ctx.Request().Header.Get(HeaderActorRole)
	if role == "" {
		return commands.Actor{}, errs.NewValueIsRequiredError(HeaderActorRole)
	}

	kind, err := commands.ActorKindFromString(role)
	if err != nil {
		return commands.Actor{}, err
	}

	rawID := ctx.Request().Header.Get(HeaderActorID)
	if rawID == "" {
		return commands.Actor{}, errs.NewValueIsRequiredError(HeaderActorID)
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return commands.Actor{}, errs.NewValueIsInvalidErrorWithCause(HeaderActorID,
			fmt.Errorf("%q is not a valid identifier", rawID))
	}

	return commands.NewActor(kind, id)
}

// requestIDParam parses the :id path parameter.
func requestIDParam(ctx echo.Context) (int64, error) {
	raw := ctx.Param("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%q is not a valid identifier", raw))
	}

	return id, nil
}
