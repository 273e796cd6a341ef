package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/mrlokans/madr/internal/apperrors"
	"github.com/mrlokans/madr/internal/auth"
)

type accountRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// loginForm follows the OAuth2 password flow: username carries the email.
type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type AccountsController struct {
	service  AccountService
	recorder LoginRecorder
}

// NewAccountsController creates the account endpoints. recorder may be nil.
func NewAccountsController(service AccountService, recorder LoginRecorder) *AccountsController {
	return &AccountsController{service: service, recorder: recorder}
}

func (ac *AccountsController) Register(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	account, err := ac.service.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

func (ac *AccountsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	account, err := ac.service.Update(c.Request.Context(), auth.GetAccountID(c), id, req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (ac *AccountsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ac.service.Delete(c.Request.Context(), auth.GetAccountID(c), id); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, auth.MsgAccountDeleted)
}

func (ac *AccountsController) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		respondValidation(c, err)
		return
	}

	token, err := ac.service.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if ac.recorder != nil && apperrors.IsKind(err, apperrors.KindBadRequest) {
			ac.recorder.RecordFailure(c.ClientIP(), form.Username)
		}
		respondError(c, err)
		return
	}

	if ac.recorder != nil {
		ac.recorder.RecordSuccess(c.ClientIP(), form.Username)
	}
	c.JSON(http.StatusOK, token)
}

func (ac *AccountsController) Refresh(c *gin.Context) {
	token, err := ac.service.Refresh(auth.CurrentAccount(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}
