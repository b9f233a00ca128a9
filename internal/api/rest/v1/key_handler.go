package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jakenef/project-rsa/internal/domain/keys"
)

// MaxPayloadBytes caps the request body of the encrypt and decrypt endpoints.
const MaxPayloadBytes = 8 << 20

// KeyHandler defines the interface for handling key pair operations
type KeyHandler interface {
	Generate(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

// keyHandler struct holds the services
type keyHandler struct {
	keyPairService keys.KeyPairService
	cipherService  keys.CipherService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyPairService keys.KeyPairService, cipherService keys.CipherService) KeyHandler {
	return &keyHandler{
		keyPairService: keyPairService,
		cipherService:  cipherService,
	}
}

// Generate handles the POST request to generate and store a key pair
// @Summary Generate an RSA key pair
// @Description Draw two primes of prime_bits bits each and store the resulting key pair.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyPairRequest true "Key pair parameters"
// @Success 201 {object} KeyPairMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) Generate(ctx *gin.Context) {
	var request GenerateKeyPairRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid key pair request: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	keyPairMeta, err := handler.keyPairService.Generate(ctx.Request.Context(), request.PrimeBits)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{
			Message: fmt.Sprintf("error generating key pair: %v", err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusCreated, NewKeyPairMetaResponse(keyPairMeta))
}

// ListMetadata handles the GET request to list key pairs with optional query parameters
// @Summary List key pairs based on query parameters
// @Description Fetch key pairs filtered by prime size, primality test and creation date, with pagination and sorting options.
// @Tags Key
// @Produce json
// @Param primeBits query int false "Prime size in bits"
// @Param primalityTest query string false "Primality test"
// @Param dateTimeCreated query string false "Created at or after (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeyPairMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := keys.NewKeyPairQuery()

	intParams := map[string]*int{
		"primeBits": &query.PrimeBits,
		"limit":     &query.Limit,
		"offset":    &query.Offset,
	}
	for name, target := range intParams {
		if raw := ctx.Query(name); len(raw) > 0 {
			value, err := strconv.Atoi(raw)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, ErrorResponse{
					Message: fmt.Sprintf("query parameter %s must be an integer", name),
				})
				return
			}
			*target = value
		}
	}

	if primalityTest := ctx.Query("primalityTest"); len(primalityTest) > 0 {
		query.PrimalityTest = primalityTest
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "query parameter dateTimeCreated must be RFC3339",
			})
			return
		}
		query.DateTimeCreated = parsedTime
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	keyPairMetas, err := handler.keyPairService.List(ctx.Request.Context(), query)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{
			Message: fmt.Sprintf("list query failed: %v", err.Error()),
		})
		return
	}

	listResponse := []KeyPairMetaResponse{}
	for _, keyPairMeta := range keyPairMetas {
		listResponse = append(listResponse, NewKeyPairMetaResponse(keyPairMeta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve a key pair by ID
// @Summary Retrieve a key pair by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key pair ID"
// @Success 200 {object} KeyPairMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	keyPairMeta, err := handler.keyPairService.GetByID(ctx.Request.Context(), keyPairID)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{
			Message: fmt.Sprintf("could not get key pair with id %s: %v", keyPairID, err.Error()),
		})
		return
	}

	ctx.JSON(http.StatusOK, NewKeyPairMetaResponse(keyPairMeta))
}

// DeleteByID handles the DELETE request to delete a key pair by ID
// @Summary Delete a key pair by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key pair ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	if err := handler.keyPairService.DeleteByID(ctx.Request.Context(), keyPairID); err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{
			Message: fmt.Sprintf("error deleting key pair with id %s", keyPairID),
		})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{
		Message: fmt.Sprintf("deleted key pair with id %s", keyPairID),
	})
}

// Encrypt handles the POST request to encrypt the raw request body
// @Summary Encrypt a payload with a stored public key
// @Tags Cipher
// @Accept application/octet-stream
// @Produce application/octet-stream
// @Param id path string true "Key pair ID"
// @Success 200 {file} file "Ciphertext blocks"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/encrypt [post]
func (handler *keyHandler) Encrypt(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	payload, ok := readPayload(ctx)
	if !ok {
		return
	}

	cipherText, err := handler.cipherService.Encrypt(ctx.Request.Context(), keyPairID, payload)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{
			Message: fmt.Sprintf("could not encrypt with key pair %s: %v", keyPairID, err.Error()),
		})
		return
	}

	ctx.Data(http.StatusOK, "application/octet-stream", cipherText)
}

// Decrypt handles the POST request to decrypt the raw request body
// @Summary Decrypt a payload with a stored private key
// @Tags Cipher
// @Accept application/octet-stream
// @Produce application/octet-stream
// @Param id path string true "Key pair ID"
// @Success 200 {file} file "Plaintext"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/decrypt [post]
func (handler *keyHandler) Decrypt(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	payload, ok := readPayload(ctx)
	if !ok {
		return
	}

	plainText, err := handler.cipherService.Decrypt(ctx.Request.Context(), keyPairID, payload)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{
			Message: fmt.Sprintf("could not decrypt with key pair %s: %v", keyPairID, err.Error()),
		})
		return
	}

	ctx.Data(http.StatusOK, "application/octet-stream", plainText)
}

// readPayload reads the request body up to MaxPayloadBytes and answers the request itself on failure.
func readPayload(ctx *gin.Context) ([]byte, bool) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, MaxPayloadBytes)

	payload, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Message: fmt.Sprintf("could not read request body: %v", err.Error()),
		})
		return nil, false
	}
	return payload, true
}
