package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderly/internal/models/db_models"
	"wanderly/internal/models/request_models"
	"wanderly/internal/models/response_models"
	"wanderly/internal/services"
	"wanderly/pkg/middleware"
	"wanderly/pkg/utils"
)

const (
	SessionCookieName    = "wanderly_sid"
	oauthNonceCookieName = "wanderly_oauth_nonce"
	oauthNonceMaxAge     = 600
)

// CookieSettings controls how auth cookies are issued and where browser
// flows land afterwards.
type CookieSettings struct {
	Secure      bool
	FrontendURL string
}

type AccountController struct {
	accountService services.AccountServiceInterface
	sessionService services.SessionServiceInterface
	google         utils.GoogleIdentityProvider
	stateSigner    *utils.StateSigner
	cookies        CookieSettings
}

// NewAccountController builds the auth endpoints. google may be nil, in which
// case the Google routes answer 503.
func NewAccountController(
	accountService services.AccountServiceInterface,
	sessionService services.SessionServiceInterface,
	google utils.GoogleIdentityProvider,
	stateSigner *utils.StateSigner,
	cookies CookieSettings,
) *AccountController {
	return &AccountController{
		accountService: accountService,
		sessionService: sessionService,
		google:         google,
		stateSigner:    stateSigner,
		cookies:        cookies,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a local account and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} response_models.CurrentUserResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := a.startSession(c, account, services.AuthProviderLocal); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, response_models.CurrentUserResponse{User: account.ToResponse()})
}

// Login godoc
// @Summary Login with email and password
// @Description Authenticate a local account and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} response_models.CurrentUserResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := a.startSession(c, account, services.AuthProviderLocal); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, response_models.CurrentUserResponse{User: account.ToResponse()})
}

// GoogleLogin godoc
// @Summary Start Google login
// @Description Redirects the browser to Google's account chooser
// @Tags Auth
// @Success 302
// @Failure 503 {object} utils.ErrorResponse
// @Router /auth/google [get]
func (a *AccountController) GoogleLogin(c *gin.Context) {
	if a.google == nil {
		utils.RespondError(c, http.StatusServiceUnavailable, "Google login is not configured")
		return
	}

	state, nonce, err := a.stateSigner.CreateState()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	a.setCookie(c, oauthNonceCookieName, nonce, oauthNonceMaxAge)
	c.Redirect(http.StatusFound, a.google.AuthCodeURL(state))
}

// GoogleCallback godoc
// @Summary Google login callback
// @Description Completes the Google login and redirects to the frontend
// @Tags Auth
// @Param state query string true "Signed state"
// @Param code query string true "Authorization code"
// @Success 302
// @Router /auth/google/callback [get]
func (a *AccountController) GoogleCallback(c *gin.Context) {
	failure := a.cookies.FrontendURL + "/login"
	traceID := c.GetString(middleware.ContextTraceID)

	if a.google == nil {
		c.Redirect(http.StatusFound, failure)
		return
	}

	nonce, _ := c.Cookie(oauthNonceCookieName)
	a.setCookie(c, oauthNonceCookieName, "", -1)

	if errParam := c.Query("error"); errParam != "" {
		log.Printf("[%s] google login cancelled: %s", traceID, errParam)
		c.Redirect(http.StatusFound, failure)
		return
	}

	if err := a.stateSigner.ValidateState(c.Query("state"), nonce); err != nil {
		log.Printf("[%s] google callback: %v", traceID, err)
		c.Redirect(http.StatusFound, failure)
		return
	}

	profile, err := a.google.ExchangeProfile(c.Request.Context(), c.Query("code"))
	if err != nil {
		log.Printf("[%s] google callback: %v", traceID, err)
		c.Redirect(http.StatusFound, failure)
		return
	}

	account, err := a.accountService.LoginWithGoogle(c.Request.Context(), *profile)
	if err != nil {
		log.Printf("[%s] google login for %s: %v", traceID, profile.Email, err)
		c.Redirect(http.StatusFound, failure)
		return
	}

	if err := a.startSession(c, account, services.AuthProviderGoogle); err != nil {
		log.Printf("[%s] google login session: %v", traceID, err)
		c.Redirect(http.StatusFound, failure)
		return
	}

	c.Redirect(http.StatusFound, a.cookies.FrontendURL)
}

// Logout godoc
// @Summary Logout
// @Description Destroys the current session and redirects to the frontend
// @Tags Auth
// @Success 302
// @Router /auth/logout [get]
func (a *AccountController) Logout(c *gin.Context) {
	if sid := c.GetString(middleware.ContextSessionID); sid != "" {
		if err := a.sessionService.Destroy(c.Request.Context(), sid); err != nil {
			log.Printf("[%s] logout: %v", c.GetString(middleware.ContextTraceID), err)
		}
	}
	a.setCookie(c, SessionCookieName, "", -1)
	c.Redirect(http.StatusFound, a.cookies.FrontendURL+"/")
}

// Me godoc
// @Summary Current user
// @Description Returns the signed-in user, or 401 with a null user
// @Tags Auth
// @Produce json
// @Success 200 {object} response_models.CurrentUserResponse
// @Failure 401 {object} response_models.CurrentUserResponse
// @Router /auth/me [get]
func (a *AccountController) Me(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, response_models.CurrentUserResponse{User: nil})
		return
	}

	account, err := a.accountService.GetAccount(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, response_models.CurrentUserResponse{User: nil})
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, response_models.CurrentUserResponse{User: account.ToResponse()})
}

func (a *AccountController) startSession(c *gin.Context, account *db_models.User, provider string) error {
	// drop any session this browser already had
	if sid := c.GetString(middleware.ContextSessionID); sid != "" {
		if err := a.sessionService.Destroy(c.Request.Context(), sid); err != nil {
			log.Printf("[%s] replace session: %v", c.GetString(middleware.ContextTraceID), err)
		}
	}

	sess, err := a.sessionService.Create(c.Request.Context(), account.ID.Hex(), provider)
	if err != nil {
		return err
	}
	a.setCookie(c, SessionCookieName, sess.ID, int(a.sessionService.TTL().Seconds()))
	return nil
}

func (a *AccountController) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", a.cookies.Secure, true)
}
