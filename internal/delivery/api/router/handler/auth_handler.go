package handler

import (
	"log/slog"
	"strings"

	"perkpass/internal/delivery/api/response"
	deliverycontext "perkpass/internal/delivery/context"
	"perkpass/internal/delivery/middleware"
	"perkpass/internal/domain/entity"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/policy"
	"perkpass/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	Cookies *middleware.SessionCookies
	Logger  *slog.Logger
}

// AuthHandler serves sign-in, sign-up and sign-out.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	cookies *middleware.SessionCookies
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		cookies: params.Cookies,
		logger:  params.Logger,
	}
}

// LoginForm is the sign-in form.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// SignupForm is the sign-up form. Admin cannot be chosen here.
type SignupForm struct {
	FullName string `form:"full_name" validate:"required,max=120"`
	Email    string `form:"email" validate:"required,email,max=254"`
	Password string `form:"password" validate:"required,min=8,max=72"`
	Role     string `form:"role" validate:"required,oneof=supporter fundraiser business"`
}

// LoginPage is the Data of the login page.
type LoginPage struct {
	Email string
}

// SignupPage is the Data of the signup page.
type SignupPage struct {
	Email    string
	FullName string
	Role     string
	Roles    []entity.Role
}

var signupRoles = []entity.Role{entity.RoleSupporter, entity.RoleFundraiser, entity.RoleBusiness}

// ShowLogin renders the sign-in form.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return response.Page(c, "login", "Sign in", &LoginPage{})
}

// Login signs the user in and sends them to the landing page of their role.
func (h *AuthHandler) Login(c echo.Context) error {
	var form LoginForm
	if err := c.Bind(&form); err != nil {
		return response.PageWithError(c, "login", "Sign in", &LoginPage{}, domainerrors.ErrValidationFailed)
	}

	form.Email = strings.TrimSpace(form.Email)
	page := &LoginPage{Email: form.Email}
	if err := c.Validate(&form); err != nil {
		return response.PageWithError(c, "login", "Sign in", page, err)
	}

	out, err := h.authUC.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		return response.PageWithError(c, "login", "Sign in", page, err)
	}

	h.cookies.Write(c, out.Tokens)

	return response.SeeOther(c, landingPath(out))
}

// ShowSignup renders the sign-up form.
func (h *AuthHandler) ShowSignup(c echo.Context) error {
	return response.Page(c, "signup", "Create an account", &SignupPage{
		Role:  entity.RoleSupporter.String(),
		Roles: signupRoles,
	})
}

// Signup creates the account and its profile, then signs the user in.
func (h *AuthHandler) Signup(c echo.Context) error {
	var form SignupForm
	if err := c.Bind(&form); err != nil {
		return response.PageWithError(c, "signup", "Create an account",
			&SignupPage{Roles: signupRoles}, domainerrors.ErrValidationFailed)
	}

	form.Email = strings.TrimSpace(form.Email)
	form.FullName = strings.TrimSpace(form.FullName)
	page := &SignupPage{
		Email:    form.Email,
		FullName: form.FullName,
		Role:     form.Role,
		Roles:    signupRoles,
	}
	if err := c.Validate(&form); err != nil {
		return response.PageWithError(c, "signup", "Create an account", page, err)
	}

	out, err := h.authUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Email:    form.Email,
		Password: form.Password,
		FullName: form.FullName,
		Role:     entity.Role(form.Role),
	})
	if err != nil {
		return response.PageWithError(c, "signup", "Create an account", page, err)
	}

	h.cookies.Write(c, out.Tokens)

	return response.SeeOther(c, landingPath(out))
}

// Logout ends the session. It always clears the cookies, even when the stored token
// could not be deleted.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.authUC.SignOut(ctx, h.cookies.RefreshToken(c)); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Sign out failed", slog.Any("error", err))
	}

	h.cookies.Clear(c)

	return response.SeeOther(c, policy.LoginPath)
}

func landingPath(out *usecase.AuthOutput) string {
	if out.Profile == nil {
		return entity.Role("").LandingPath()
	}

	return out.Profile.Role.LandingPath()
}
