// Package tokens holds the ordered token registry consumed by balance and withdrawal flows.
package tokens

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	"github.com/sbilibin2017/gw-family-wallet/internal/models"
)

// ErrInvalidRegistry is returned when a registry file contains an unusable descriptor.
var ErrInvalidRegistry = errors.New("invalid token registry")

// Registry is an immutable ordered list of token descriptors keyed by contract address.
type Registry struct {
	tokens    []models.TokenDescriptor
	byAddress map[string]models.TokenDescriptor
}

// NewRegistry validates descriptors and builds a registry preserving their order.
func NewRegistry(descriptors []models.TokenDescriptor) (*Registry, error) {
	r := &Registry{
		tokens:    make([]models.TokenDescriptor, 0, len(descriptors)),
		byAddress: make(map[string]models.TokenDescriptor, len(descriptors)),
	}

	symbols := make(map[string]struct{}, len(descriptors))
	for i, d := range descriptors {
		if !common.IsHexAddress(d.ContractAddress) {
			return nil, fmt.Errorf("%w: token %d has malformed address %q", ErrInvalidRegistry, i, d.ContractAddress)
		}
		if strings.TrimSpace(d.Symbol) == "" {
			return nil, fmt.Errorf("%w: token %d has empty symbol", ErrInvalidRegistry, i)
		}

		key := normalize(d.ContractAddress)
		if _, ok := r.byAddress[key]; ok {
			return nil, fmt.Errorf("%w: duplicate contract %s", ErrInvalidRegistry, d.ContractAddress)
		}
		if _, ok := symbols[d.Symbol]; ok {
			return nil, fmt.Errorf("%w: duplicate symbol %s", ErrInvalidRegistry, d.Symbol)
		}

		symbols[d.Symbol] = struct{}{}
		r.byAddress[key] = d
		r.tokens = append(r.tokens, d)
	}

	return r, nil
}

// Load reads a JSON array of descriptors from path.
// An empty path yields the built-in registry.
func Load(path string) (*Registry, error) {
	if path == "" {
		return NewRegistry(models.DefaultTokens)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token registry: %w", err)
	}

	var descriptors []models.TokenDescriptor
	if err := json.Unmarshal(data, &descriptors); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistry, err)
	}

	r, err := NewRegistry(descriptors)
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("token registry loaded",
		"path", path,
		"tokens", len(r.tokens),
	)
	return r, nil
}

// List returns a copy of the descriptors in registry order.
func (r *Registry) List() []models.TokenDescriptor {
	out := make([]models.TokenDescriptor, len(r.tokens))
	copy(out, r.tokens)
	return out
}

// ByAddress looks a token up by contract address, ignoring hex case.
func (r *Registry) ByAddress(address string) (models.TokenDescriptor, bool) {
	d, ok := r.byAddress[normalize(address)]
	return d, ok
}

func normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
