package cryptography

import (
	"context"
	"fmt"
	"math/big"

	"github.com/jakenef/project-rsa/internal/domain/cryptoalg"
	"golang.org/x/sync/errgroup"
)

// blockCipher maps every plaintext chunk independently through modular
// exponentiation. There is no chaining, so chunks are spread over workers and
// written straight into their slot of the output buffer.
type blockCipher struct {
	workers int
}

// NewBlockCipher creates a BlockCipher that processes up to workers chunks at once.
func NewBlockCipher(workers int) (cryptoalg.BlockCipher, error) {
	if workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", workers)
	}
	return &blockCipher{workers: workers}, nil
}

// Encrypt cuts plainText into ChunkSize pieces, right-pads the final piece with
// zero bytes and writes each encrypted piece as a BlockSize big-endian block.
func (c *blockCipher) Encrypt(ctx context.Context, plainText []byte, publicKey *cryptoalg.PublicKey) ([]byte, error) {
	layout, err := publicKey.Layout()
	if err != nil {
		return nil, err
	}
	if len(plainText) == 0 {
		return []byte{}, nil
	}

	chunks := (len(plainText) + layout.ChunkSize - 1) / layout.ChunkSize
	out := make([]byte, chunks*layout.BlockSize)

	err = c.forEachChunk(ctx, chunks, func(i int) error {
		start := i * layout.ChunkSize
		end := min(start+layout.ChunkSize, len(plainText))

		// SetBytes reads big-endian, so right padding means shifting the short
		// final chunk left by the missing bytes
		m := new(big.Int).SetBytes(plainText[start:end])
		if missing := layout.ChunkSize - (end - start); missing > 0 {
			m.Lsh(m, uint(8*missing))
		}

		block := modExp(m, publicKey.Exponent, publicKey.Modulus)
		block.FillBytes(out[i*layout.BlockSize : (i+1)*layout.BlockSize])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Decrypt reverses Encrypt and strips the zero padding of the final chunk. A
// plaintext that itself ended in zero bytes loses them here.
func (c *blockCipher) Decrypt(ctx context.Context, cipherText []byte, privateKey *cryptoalg.PrivateKey) ([]byte, error) {
	layout, err := privateKey.Layout()
	if err != nil {
		return nil, err
	}
	if len(cipherText)%layout.BlockSize != 0 {
		return nil, cryptoalg.Errorf("Decrypt", cryptoalg.ErrChunkWidthMismatch,
			"ciphertext length %d is not a multiple of the %d-byte block width", len(cipherText), layout.BlockSize)
	}
	if len(cipherText) == 0 {
		return []byte{}, nil
	}

	blocks := len(cipherText) / layout.BlockSize
	out := make([]byte, blocks*layout.ChunkSize)
	chunkBits := 8 * layout.ChunkSize

	err = c.forEachChunk(ctx, blocks, func(i int) error {
		block := new(big.Int).SetBytes(cipherText[i*layout.BlockSize : (i+1)*layout.BlockSize])
		if block.Cmp(privateKey.Modulus) >= 0 {
			return cryptoalg.Errorf("Decrypt", cryptoalg.ErrBlockOutOfRange, "block %d is not below the modulus", i)
		}

		m := modExp(block, privateKey.Exponent, privateKey.Modulus)
		if m.BitLen() > chunkBits {
			return cryptoalg.Errorf("Decrypt", cryptoalg.ErrBlockOutOfRange,
				"block %d decrypts to a value wider than %d bytes", i, layout.ChunkSize)
		}
		m.FillBytes(out[i*layout.ChunkSize : (i+1)*layout.ChunkSize])
		return nil
	})
	if err != nil {
		return nil, err
	}

	return trimFinalChunk(out, layout.ChunkSize), nil
}

// forEachChunk runs fn for 0..n-1 with at most c.workers calls in flight and
// stops handing out work once ctx is done or a call fails.
func (c *blockCipher) forEachChunk(ctx context.Context, n int, fn func(i int) error) error {
	if c.workers == 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("cipher cancelled: %w", err)
			}
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(c.workers)
	for i := 0; i < n; i++ {
		if groupCtx.Err() != nil {
			break
		}
		i := i
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return fmt.Errorf("cipher cancelled: %w", err)
			}
			return fn(i)
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("cipher cancelled: %w", err)
	}
	return nil
}

// trimFinalChunk drops trailing zero bytes, looking no further back than the last chunk.
func trimFinalChunk(out []byte, chunkSize int) []byte {
	end := len(out)
	floor := end - chunkSize
	for end > floor && out[end-1] == 0 {
		end--
	}
	return out[:end]
}
