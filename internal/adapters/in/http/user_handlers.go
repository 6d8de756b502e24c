package http

import (
	"net/http"

	"burgershop/internal/core/application/usecases/commands"
	"burgershop/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type registerUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is returned on both registration and login: the account view
// plus a bearer token for subsequent requests.
type authResponse struct {
	Token string                           `json:"token"`
	User  queries.AuthenticatedUserResponse `json:"user"`
}

// registerUser handles POST /api/users - creates a customer account and logs
// it in.
func (s *Server) registerUser(ctx echo.Context) error {
	var req registerUserRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewRegisterUserCommand(req.Name, req.Email, req.Password)
	if err != nil {
		return jsonError(ctx, err)
	}

	account, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return jsonError(ctx, err)
	}

	view := queries.AuthenticatedUserResponse{
		ID:           account.ID(),
		Name:         account.Name(),
		Email:        account.Email(),
		Role:         account.Role().String(),
		Capabilities: account.Capabilities(),
	}

	token, err := s.tokens.Issue(view)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, authResponse{Token: token, User: view})
}

// login handles POST /api/login - verifies credentials and issues a token.
func (s *Server) login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	query, err := queries.NewAuthenticateUserQuery(req.Email, req.Password)
	if err != nil {
		return jsonError(ctx, err)
	}

	view, err := s.authenticateUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}

	token, err := s.tokens.Issue(view)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, authResponse{Token: token, User: view})
}
