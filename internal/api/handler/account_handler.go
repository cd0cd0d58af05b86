package handler

import (
	"Pulseboard/internal/pkg/response"
	"Pulseboard/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountSvc service.AccountService
}

func NewAccountHandler(accountSvc service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountSvc: accountSvc,
	}
}

func (s *AccountHandler) GetAccounts(c *gin.Context) {
	userID := c.GetUint64("user_id")

	accounts, err := s.accountSvc.GetAccounts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, accounts)
}

func (s *AccountHandler) GetAccount(c *gin.Context) {
	userID := c.GetUint64("user_id")
	accountIDStr := c.Param("account_id")

	accountID, err := strconv.ParseUint(accountIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	account, err := s.accountSvc.GetAccount(c.Request.Context(), userID, accountID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, account)
}

func (s *AccountHandler) DeactivateAccount(c *gin.Context) {
	userID := c.GetUint64("user_id")
	accountIDStr := c.Param("account_id")

	accountID, err := strconv.ParseUint(accountIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.accountSvc.DeactivateAccount(c.Request.Context(), userID, accountID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
