package v1

import (
	"fmt"
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
)

// PrimalityHandler defines the interface for handling primality checks
type PrimalityHandler interface {
	Check(ctx *gin.Context)
}

type primalityHandler struct {
	rsaProcessor cryptoalg.RSAProcessor
}

// NewPrimalityHandler creates a new PrimalityHandler
func NewPrimalityHandler(rsaProcessor cryptoalg.RSAProcessor) PrimalityHandler {
	return &primalityHandler{rsaProcessor: rsaProcessor}
}

// Check handles the POST request to test a number for primality
// @Summary Test a number for primality
// @Description Run Fermat or Miller-Rabin with the given number of rounds. Defaults are miller-rabin and 20 rounds.
// @Tags Primality
// @Accept json
// @Produce json
// @Param requestBody body PrimalityRequest true "Number and test parameters"
// @Success 200 {object} PrimalityResponse
// @Failure 400 {object} ErrorResponse
// @Router /primality [post]
func (handler *primalityHandler) Check(ctx *gin.Context) {
	var request PrimalityRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid primality request: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	n, ok := new(big.Int).SetString(request.Number, 10)
	if !ok {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("%q is not a decimal integer", request.Number),
		})
		return
	}

	test := cryptoalg.PrimalityTest(request.Test)
	if test == "" {
		test = cryptoalg.PrimalityTestMillerRabin
	}
	rounds := request.Rounds
	if rounds == 0 {
		rounds = cryptoalg.DefaultRounds
	}

	probablyPrime, err := handler.rsaProcessor.IsProbablyPrime(n, test, rounds)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{
			Message: fmt.Sprintf("primality test failed: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusOK, PrimalityResponse{
		Number:        n.String(),
		Test:          string(test),
		Rounds:        rounds,
		ProbablyPrime: probablyPrime,
	})
}
