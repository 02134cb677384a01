package main

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/shabbyrobe/go-bignum"
	"github.com/spf13/cobra"
)

// This finds the multiplier compilers use to replace division by a constant
// with a multiply and a shift.

var magicCmd = &cobra.Command{
	Use:   "magic <numer> <denom>",
	Short: "Divide a uint64 by multiplying with the reciprocal of denom",
	Args:  cobra.ExactArgs(2),
	RunE:  runMagic,
}

func runMagic(cmd *cobra.Command, args []string) error {
	numer, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return err
	}
	denom, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return err
	}
	if denom == 0 {
		return fmt.Errorf("denom must be non-zero")
	}

	recip, shift, add := divFindMulU64(denom)
	result := divMulU64(numer, recip, shift, add)

	log.Debug().Uint64("recip", recip).Uint("shift", shift).Bool("65bit", add).Msg("reciprocal")
	fmt.Printf("%d / %d == %d\n", numer, denom, result)
	fmt.Printf("recip:%#x shift:%d 65bit:%v\n", recip, shift, add)
	if result != numer/denom {
		return fmt.Errorf("expected %d, found %d", numer/denom, result)
	}
	return nil
}

func divFindMulU64(denom uint64) (recip uint64, shift uint, add bool) {
	floorLog2d := uint(63 - bits.LeadingZeros64(denom))
	if denom&(denom-1) == 0 {
		// A zero multiplier marks a power of two, which is a plain shift.
		return 0, floorLog2d, false
	}

	proposedM, rem := bignum.U128From64(1).
		Lsh(floorLog2d).
		Lsh(64). // move into the hi bits of a 128-bit number
		QuoRem(bignum.U128From64(denom))

	if !proposedM.IsUint64() {
		panic("proposedM overflows 64 bit")
	}
	if !rem.IsUint64() {
		panic("remainder overflows 64 bit")
	}
	proposedM64, rem64 := proposedM.AsUint64(), rem.AsUint64()

	e := denom - rem64
	if e < 1<<floorLog2d {
		shift = floorLog2d
	} else {
		// 0.65 bit version:
		proposedM64 += proposedM64
		twiceRem := rem64 + rem64
		if twiceRem >= denom || twiceRem < rem64 {
			proposedM64++
		}
		shift = floorLog2d
		add = true
	}

	recip = 1 + proposedM64
	return recip, shift, add
}

func divMulU64(numer, recip uint64, shift uint, add bool) uint64 {
	if recip == 0 {
		return numer >> shift
	}
	q := bignum.U128From64(numer).
		Mul(bignum.U128From64(recip)).
		Rsh(64).
		AsUint64()

	if add {
		t := ((numer - q) >> 1) + q
		return t >> shift
	}
	return q >> shift
}
