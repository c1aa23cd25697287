package dilithium

import (
	"fmt"

	"Dilithium-Signature/ringq"
	"Dilithium-Signature/xof"
)

// Params bundles the dimensions and bound windows of one parameter set.
// K, L and Eta follow the security-level table; Gamma1, Gamma2, Beta and
// Tau are shared across levels. The bounds here are the intentionally
// relaxed reference values (gamma1 = gamma2 = Q, beta = 1); they are
// plain fields rather than constants so a harness can tighten them.
type Params struct {
	K      int
	L      int
	Eta    uint32
	Gamma1 uint32
	Gamma2 uint32
	Beta   uint32
	Tau    int
}

// Parameter table keyed by security level: (k, l, eta).
var paramSets = map[int]Params{
	2: {K: 4, L: 4, Eta: 2},
	3: {K: 6, L: 5, Eta: 4},
	5: {K: 8, L: 7, Eta: 2},
}

// ParamsForLevel returns the parameter set for security level 2, 3 or 5.
func ParamsForLevel(level int) (Params, error) {
	p, ok := paramSets[level]
	if !ok {
		return Params{}, fmt.Errorf("%w: %d (want 2, 3 or 5)", ErrUnsupportedLevel, level)
	}
	p.Gamma1 = ringq.Q
	p.Gamma2 = ringq.Q
	p.Beta = 1
	p.Tau = xof.Tau
	return p, nil
}
