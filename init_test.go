package bignum

import (
	"flag"
	"fmt"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

var (
	fuzzIterations  = fuzzDefaultIterations
	fuzzLimbs       = fuzzDefaultLimbs
	fuzzOpsActive   = allFuzzOps
	fuzzTypesActive = allFuzzTypes
	fuzzSeed        int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList
	var types StringList

	flag.IntVar(&fuzzIterations, "bignum.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.IntVar(&fuzzLimbs, "bignum.fuzzlimbs", fuzzLimbs, "Maximum number of limbs in a fuzzed operand")
	flag.Int64Var(&fuzzSeed, "bignum.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "bignum.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Var(&types, "bignum.fuzztype", "Fuzz type (natural, integer) (can pass multiple)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	if len(types) > 0 {
		fuzzTypesActive = nil
		for _, t := range types {
			fuzzTypesActive = append(fuzzTypesActive, fuzzType(t))
		}
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger()
	log.Info().
		Int64("seed", fuzzSeed). // classic rando!
		Int("iterations", fuzzIterations).
		Int("limbs", fuzzLimbs).
		Strs("ops", fuzzOpsActive.Strings()).
		Int("intsize", intSize).
		Msg("fuzz settings")

	code := m.Run()
	os.Exit(code)
}

func accNaturalFromBigInt(b *big.Int) Natural {
	n, ok := NaturalFromBigInt(b)
	if !ok {
		panic(fmt.Errorf("bignum: negative conversion to Natural in fuzz tester for %s", b))
	}
	return n
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// randomBigNatural returns a random non-negative value of up to limbs limbs,
// with the bit length evenly distributed so short and long operands are
// equally likely.
func randomBigNatural(rng *rand.Rand, limbs int) *big.Int {
	if rng == nil {
		rng = globalRNG
	}
	v := new(big.Int)
	bits := rng.Intn(limbs*limbBits+1) - 1 // +1 for "0 bits"
	if bits < 0 {
		return v // "-1 bits" == "0"
	}
	for i := 0; i <= bits/limbBits; i++ {
		v.Lsh(v, limbBits)
		v.Or(v, new(big.Int).SetUint64(rng.Uint64()))
	}
	v.And(v, bigMask(uint(bits)))
	v.SetBit(v, bits, 1)

	// Long runs of ones and zeros hit the carry and borrow paths far more
	// often than uniform bits.
	if rng.Intn(8) == 0 {
		v.Sub(new(big.Int).Lsh(big1, uint(bits+1)), big1)
	}
	return v
}

func bigMask(bits uint) *big.Int {
	m := new(big.Int).Lsh(big1, bits)
	return m.Sub(m, big1)
}

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
)
