package tt

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/gamesolver/gamesolver/game"
)

// Hasher computes the transposition-table key for a position. Making
// this pluggable lets a game with a cheap custom fingerprint (e.g. an
// incrementally maintained Zobrist hash — see the zobrist package) use
// it as-is, while a game without one still gets a reasonable default.
type Hasher[M any] interface {
	Hash(g game.Game[M]) uint64
}

// FingerprintHasher is the default Hasher: it trusts the game's own
// Fingerprint() outright. This is the right choice whenever the game
// already supplies a well-distributed hash (a Zobrist hash, for
// instance, already has excellent avalanche behavior and gains nothing
// from a second pass).
type FingerprintHasher[M any] struct{}

func (FingerprintHasher[M]) Hash(g game.Game[M]) uint64 {
	return g.Fingerprint()
}

// XXHasher is the fast_hash option: it finishes the game's raw
// fingerprint through an xxHash avalanche pass. This matters most for
// games whose Fingerprint() is a naive, weakly mixed value (a simple
// running XOR, say) and for the parallel concurrent cache, which
// shards by key and needs well-distributed bits to avoid hot shards —
// which is why parallel search requires fast_hash to be enabled.
type XXHasher[M any] struct{}

func (XXHasher[M]) Hash(g game.Game[M]) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], g.Fingerprint())
	return xxhash.Sum64(buf[:])
}

// DefaultHasher returns the Hasher matching a fast_hash toggle.
func DefaultHasher[M any](fastHash bool) Hasher[M] {
	if fastHash {
		return XXHasher[M]{}
	}
	return FingerprintHasher[M]{}
}
