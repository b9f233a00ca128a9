//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"github.com/jakenef/project-rsa/internal/domain/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testKeyPairMeta() *keys.KeyPairMeta {
	return &keys.KeyPairMeta{
		ID:              "abc-123",
		DateTimeCreated: time.Now(),
		PrimeBits:       8,
		ModulusBits:     12,
		ChunkSize:       1,
		BlockSize:       2,
		PrimalityTest:   "miller-rabin",
		Modulus:         "3233",
		PublicExponent:  "17",
		PrivateExponent: "2753",
	}
}

func newTestContext(method, url string, body []byte, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, bytes.NewReader(body))
	if method == http.MethodPost && len(body) > 0 && body[0] == '{' {
		req.Header.Set("Content-Type", "application/json")
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params
	return c, w
}

func TestKeyHandler_Generate_Success(t *testing.T) {
	mockKeyPairService := new(MockKeyPairService)
	handler := NewKeyHandler(mockKeyPairService, new(MockCipherService))

	mockKeyPairService.On("Generate", mock.Anything, 64).Return(testKeyPairMeta(), nil)

	c, w := newTestContext(http.MethodPost, "/keys", []byte(`{"prime_bits": 64}`))
	handler.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	assert.Contains(t, w.Body.String(), `"modulus":"3233"`)
	assert.NotContains(t, w.Body.String(), "2753")
	mockKeyPairService.AssertExpectations(t)
}

func TestKeyHandler_Generate_InvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"prime_bits":`},
		{"prime bits too small", `{"prime_bits": 4}`},
		{"prime bits too large", `{"prime_bits": 10000}`},
		{"missing prime bits", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockKeyPairService := new(MockKeyPairService)
			handler := NewKeyHandler(mockKeyPairService, new(MockCipherService))

			c, w := newTestContext(http.MethodPost, "/keys", []byte(tt.body))
			handler.Generate(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockKeyPairService.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
		})
	}
}

func TestKeyHandler_Generate_ServiceError(t *testing.T) {
	mockKeyPairService := new(MockKeyPairService)
	handler := NewKeyHandler(mockKeyPairService, new(MockCipherService))

	mockKeyPairService.On("Generate", mock.Anything, 16).Return(nil, errors.New("database is down"))

	c, w := newTestContext(http.MethodPost, "/keys", []byte(`{"prime_bits": 16}`))
	handler.Generate(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "database is down")
}

func TestKeyHandler_ListMetadata_Success(t *testing.T) {
	mockKeyPairService := new(MockKeyPairService)
	handler := NewKeyHandler(mockKeyPairService, new(MockCipherService))

	mockKeyPairService.
		On("List", mock.Anything, mock.MatchedBy(func(q *keys.KeyPairQuery) bool {
			return q.PrimeBits == 8 && q.Limit == 5 && q.SortOrder == "asc"
		})).
		Return([]*keys.KeyPairMeta{testKeyPairMeta()}, nil)

	c, w := newTestContext(http.MethodGet, "/keys?primeBits=8&limit=5&sortOrder=asc", nil)
	handler.ListMetadata(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	mockKeyPairService.AssertExpectations(t)
}

func TestKeyHandler_ListMetadata_InvalidQuery(t *testing.T) {
	urls := []string{
		"/keys?limit=ten",
		"/keys?dateTimeCreated=yesterday",
		"/keys?sortBy=private_exponent",
		"/keys?primeBits=2",
	}

	for _, url := range urls {
		t.Run(url, func(t *testing.T) {
			mockKeyPairService := new(MockKeyPairService)
			handler := NewKeyHandler(mockKeyPairService, new(MockCipherService))

			c, w := newTestContext(http.MethodGet, url, nil)
			handler.ListMetadata(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockKeyPairService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
		})
	}
}

func TestKeyHandler_GetMetadataByID(t *testing.T) {
	mockKeyPairService := new(MockKeyPairService)
	handler := NewKeyHandler(mockKeyPairService, new(MockCipherService))

	mockKeyPairService.On("GetByID", mock.Anything, "abc-123").Return(testKeyPairMeta(), nil)
	mockKeyPairService.On("GetByID", mock.Anything, "missing").
		Return(nil, fmt.Errorf("%w: id missing", keys.ErrKeyPairNotFound))

	c, w := newTestContext(http.MethodGet, "/keys/abc-123", nil, gin.Param{Key: "id", Value: "abc-123"})
	handler.GetMetadataByID(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")

	c, w = newTestContext(http.MethodGet, "/keys/missing", nil, gin.Param{Key: "id", Value: "missing"})
	handler.GetMetadataByID(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestKeyHandler_DeleteByID(t *testing.T) {
	mockKeyPairService := new(MockKeyPairService)
	handler := NewKeyHandler(mockKeyPairService, new(MockCipherService))

	mockKeyPairService.On("DeleteByID", mock.Anything, "abc-123").Return(nil)
	mockKeyPairService.On("DeleteByID", mock.Anything, "missing").
		Return(fmt.Errorf("failed to delete key pair: %w", keys.ErrKeyPairNotFound))

	c, w := newTestContext(http.MethodDelete, "/keys/abc-123", nil, gin.Param{Key: "id", Value: "abc-123"})
	handler.DeleteByID(c)
	assert.Equal(t, http.StatusNoContent, w.Code)

	c, w = newTestContext(http.MethodDelete, "/keys/missing", nil, gin.Param{Key: "id", Value: "missing"})
	handler.DeleteByID(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	mockKeyPairService.AssertExpectations(t)
}

func TestKeyHandler_Encrypt(t *testing.T) {
	mockCipherService := new(MockCipherService)
	handler := NewKeyHandler(new(MockKeyPairService), mockCipherService)

	plainText := []byte("AB")
	cipherText := []byte{0x0A, 0xE6, 0x02, 0x0C}
	mockCipherService.On("Encrypt", mock.Anything, "abc-123", plainText).Return(cipherText, nil)

	c, w := newTestContext(http.MethodPost, "/keys/abc-123/encrypt", plainText, gin.Param{Key: "id", Value: "abc-123"})
	handler.Encrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, cipherText, w.Body.Bytes())
	mockCipherService.AssertExpectations(t)
}

func TestKeyHandler_Decrypt(t *testing.T) {
	mockCipherService := new(MockCipherService)
	handler := NewKeyHandler(new(MockKeyPairService), mockCipherService)

	cipherText := []byte{0x0A, 0xE6, 0x02, 0x0C}
	mockCipherService.On("Decrypt", mock.Anything, "abc-123", cipherText).Return([]byte("AB"), nil)

	c, w := newTestContext(http.MethodPost, "/keys/abc-123/decrypt", cipherText, gin.Param{Key: "id", Value: "abc-123"})
	handler.Decrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []byte("AB"), w.Body.Bytes())
}

func TestKeyHandler_Decrypt_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"unknown key pair", fmt.Errorf("%w: id abc-123", keys.ErrKeyPairNotFound), http.StatusNotFound},
		{"misaligned ciphertext", cryptoalg.Errorf("Decrypt", cryptoalg.ErrChunkWidthMismatch, "bad length"), http.StatusBadRequest},
		{"block out of range", cryptoalg.Errorf("Decrypt", cryptoalg.ErrBlockOutOfRange, "block 0"), http.StatusBadRequest},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCipherService := new(MockCipherService)
			handler := NewKeyHandler(new(MockKeyPairService), mockCipherService)

			mockCipherService.On("Decrypt", mock.Anything, "abc-123", mock.Anything).Return(nil, tt.err)

			c, w := newTestContext(http.MethodPost, "/keys/abc-123/decrypt", []byte{1, 2, 3}, gin.Param{Key: "id", Value: "abc-123"})
			handler.Decrypt(c)

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}
