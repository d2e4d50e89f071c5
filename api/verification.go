package api

import (
	"net/http"

	"github.com/VeriPay/VeriPay-Backend/api/apistrings"
	basemodels "github.com/VeriPay/VeriPay-Backend/models"
	"github.com/VeriPay/VeriPay-Backend/providers/identity"
	"github.com/VeriPay/VeriPay-Backend/services/verification"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Verification struct {
	server *Server
}

func (v Verification) router(server *Server) {
	v.server = server

	serverGroupV1 := server.router.Group("/api/v1/verification")
	serverGroupV1.POST("verify", AuthenticatedMiddleware(), v.verify)
	serverGroupV1.GET("history", AuthenticatedMiddleware(), v.history)
}

// errorStatus maps the failure taxonomy onto HTTP codes.
func errorStatus(kind verification.ErrorKind) int {
	switch kind {
	case verification.ErrKindInsufficientFunds:
		return http.StatusPaymentRequired
	case verification.ErrKindNotFound:
		return http.StatusNotFound
	case verification.ErrKindInvalidFormat:
		return http.StatusBadRequest
	case verification.ErrKindServiceUnavailable, verification.ErrKindTimeout:
		return http.StatusServiceUnavailable
	case verification.ErrKindUnconfigured:
		return http.StatusInternalServerError
	}
	return http.StatusBadGateway
}

func (v *Verification) verify(ctx *gin.Context) {
	request := struct {
		Kind   string `json:"kind" binding:"required"`
		Value  string `json:"value" binding:"required"`
		Layout string `json:"layout"`
	}{}

	err := ctx.ShouldBindJSON(&request)
	if err != nil {
		v.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidVerificationInput))
		return
	}

	kind := identity.VerificationKind(request.Kind)
	switch kind {
	case identity.KindNIN, identity.KindVNIN, identity.KindBVN, identity.KindPhone:
	default:
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidKindInput))
		return
	}

	userID := ctx.GetInt64("user_id")

	output, verr := v.server.verification.Verify(ctx.Request.Context(), verification.VerifyInput{
		UserID: userID,
		Kind:   kind,
		Value:  request.Value,
		Layout: verification.ParseLayout(request.Layout),
	})
	if verr != nil {
		ctx.JSON(errorStatus(verr.Kind), basemodels.NewError(verr.Message))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Verification Success", output))
}

func (v *Verification) history(ctx *gin.Context) {
	userID := ctx.GetInt64("user_id")

	items, err := v.server.verification.History(ctx.Request.Context(), userID, 20)
	if err != nil {
		v.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Verification History", items))
}
