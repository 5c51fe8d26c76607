package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/servnect/marketplace-api/internal/api/metrics"
	"github.com/servnect/marketplace-api/internal/api/middleware"
	"github.com/servnect/marketplace-api/internal/core/domain"
	"github.com/servnect/marketplace-api/internal/core/ports"
)

// AuthHandler serves registration, login and logout for both principal
// kinds. The bearer token in the response body is the primary credential;
// the httpOnly cookie is a legacy carrier for the browser clients.
type AuthHandler struct {
	authService  ports.AuthService
	tokenTTL     time.Duration
	secureCookie bool
}

func NewAuthHandler(authService ports.AuthService, tokenTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, tokenTTL: tokenTTL, secureCookie: secureCookie}
}

// RegisterUser creates a customer account.
//
// @Summary      Register a customer account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "Registration details"
// @Success      201   {object}  userAuthResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/user/register [post]
func (h *AuthHandler) RegisterUser(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.RegisterUser(c.Request().Context(), ports.RegisterUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(domain.KindUser)).Inc()
	return c.JSON(http.StatusCreated, userAuthResponse{User: user})
}

// LoginUser authenticates a customer and returns a bearer token.
//
// @Summary      Customer login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  userAuthResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/user/login [post]
func (h *AuthHandler) LoginUser(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.LoginUser(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(string(domain.KindUser), loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(domain.KindUser), "success").Inc()
	h.setTokenCookie(c, token)
	return c.JSON(http.StatusOK, userAuthResponse{Token: token, User: user})
}

// RegisterExpert creates an expert account and signs it in.
//
// @Summary      Register an expert account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerExpertRequest  true  "Registration details"
// @Success      201   {object}  expertAuthResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/expert/register [post]
func (h *AuthHandler) RegisterExpert(c echo.Context) error {
	var req registerExpertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, expert, err := h.authService.RegisterExpert(c.Request().Context(), ports.RegisterExpertInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		Service:   req.Service,
		DOB:       req.DOB,
		Location:  req.Location,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(domain.KindExpert)).Inc()
	h.setTokenCookie(c, token)
	return c.JSON(http.StatusCreated, expertAuthResponse{Token: token, Expert: expert})
}

// LoginExpert authenticates an expert and returns a bearer token.
//
// @Summary      Expert login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  expertAuthResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/expert/login [post]
func (h *AuthHandler) LoginExpert(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, expert, err := h.authService.LoginExpert(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(string(domain.KindExpert), loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(domain.KindExpert), "success").Inc()
	h.setTokenCookie(c, token)
	return c.JSON(http.StatusOK, expertAuthResponse{Token: token, Expert: expert})
}

// Logout is stateless: the client discards its token; the cookie carrier is
// cleared here.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/user/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

func (h *AuthHandler) setTokenCookie(c echo.Context, token string) {
	sameSite := http.SameSiteLaxMode
	if h.secureCookie {
		// Cross-origin browser clients need SameSite=None, which in turn
		// requires Secure.
		sameSite = http.SameSiteNoneMode
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: sameSite,
	})
}

func loginResult(err error) string {
	if errors.Is(err, domain.ErrTooManyAttempts) {
		return "throttled"
	}
	return "failure"
}
