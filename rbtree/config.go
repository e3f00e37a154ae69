package rbtree

import (
	"cmp"
	"fmt"
)

// Config configures a red-black tree.
//
// K is the key type, V the type of the stored values. For set semantics
// V equals K and KeyOf is Identity; for map semantics V is a key/value pair
// and KeyOf selects the key.
type Config[K, V any] struct {
	// Compare defines a total order over keys. It returns a negative number
	// if a < b, zero if a == b and a positive number if a > b.
	Compare func(a, b K) int
	// KeyOf projects a stored value to its key.
	KeyOf func(V) K
	// Multi permits multiple values with equal keys.
	Multi bool
	// MaxNodes limits the number of elements the tree will allocate.
	// Zero means unlimited (up to the arena's index range).
	MaxNodes int
}

// Identity is the key projection for set semantics.
func Identity[K any](k K) K {
	return k
}

// SetConfig returns a configuration for naturally ordered keys stored as
// bare values.
func SetConfig[K cmp.Ordered](multi bool) Config[K, K] {
	return Config[K, K]{
		Compare: cmp.Compare[K],
		KeyOf:   Identity[K],
		Multi:   multi,
	}
}

func (cfg Config[K, V]) normalized() Config[K, V] {
	if cfg.MaxNodes == 0 {
		cfg.MaxNodes = maxNodes
	}
	return cfg
}

func (cfg Config[K, V]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	if cfg.KeyOf == nil {
		return fmt.Errorf("%w: key projection is required", ErrInvalidConfig)
	}
	if cfg.MaxNodes < 0 || cfg.MaxNodes > maxNodes {
		return fmt.Errorf("%w: node limit must be in [0, %d], is %d",
			ErrInvalidConfig, maxNodes, cfg.MaxNodes)
	}
	return nil
}
