package api

import (
	"errors"
	"net/http"

	"github.com/VeriPay/VeriPay-Backend/api/apistrings"
	basemodels "github.com/VeriPay/VeriPay-Backend/models"
	"github.com/VeriPay/VeriPay-Backend/services/wallet"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Wallet struct {
	server *Server
}

func (w Wallet) router(server *Server) {
	w.server = server

	serverGroupV1 := server.router.Group("/api/v1/wallet")
	serverGroupV1.GET("", AuthenticatedMiddleware(), w.getWallet)
	serverGroupV1.POST("fund", AuthenticatedMiddleware(), w.fundWallet)
}

func (w *Wallet) getWallet(ctx *gin.Context) {
	userID := ctx.GetInt64("user_id")

	walletModel, err := w.server.wallets.GetWallet(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, wallet.ErrWalletNotFound) {
			ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNoWallet))
			return
		}
		w.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Wallet", walletModel))
}

func (w *Wallet) fundWallet(ctx *gin.Context) {
	request := struct {
		Amount decimal.Decimal `json:"amount" binding:"required"`
	}{}

	err := ctx.ShouldBindJSON(&request)
	if err != nil {
		w.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidFundInput))
		return
	}

	if request.Amount.LessThanOrEqual(decimal.Zero) {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidFundAmount))
		return
	}

	userID := ctx.GetInt64("user_id")

	walletModel, err := w.server.wallets.Credit(ctx.Request.Context(), userID, request.Amount, "wallet funding", "wallet_funding")
	if err != nil {
		if errors.Is(err, wallet.ErrWalletNotFound) {
			ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.UserNoWallet))
			return
		}
		w.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Wallet Funded", walletModel))
}
