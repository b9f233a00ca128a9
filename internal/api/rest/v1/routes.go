package v1

import (
	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"github.com/jakenef/project-rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keyPairService keys.KeyPairService,
	cipherService keys.CipherService,
	rsaProcessor cryptoalg.RSAProcessor) {

	v1 := r.Group(BasePath) // lookup in version file

	// Key pair routes
	keyHandler := NewKeyHandler(keyPairService, cipherService)
	v1.POST("/keys", keyHandler.Generate)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)
	v1.POST("/keys/:id/encrypt", keyHandler.Encrypt)
	v1.POST("/keys/:id/decrypt", keyHandler.Decrypt)

	// Primality routes
	primalityHandler := NewPrimalityHandler(rsaProcessor)
	v1.POST("/primality", primalityHandler.Check)
}
