package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/shabbyrobe/go-bignum"
	"github.com/spf13/cobra"
)

var barrettCmd = &cobra.Command{
	Use:   "barrett [flags] <modulus>",
	Short: "Dump the reduction constants for a modulus",
	Long: `Parse a modulus, dump the constants PrecomputeModMul derives for it and,
with --check, multiply two values modulo it both with and without them.`,
	Args: cobra.ExactArgs(1),
	RunE: runBarrett,
}

func init() {
	barrettCmd.Flags().Int("base", 10, "base of the modulus and the --check operands")
	barrettCmd.Flags().String("check", "", "comma separated operands x,y to multiply modulo the modulus")
}

func runBarrett(cmd *cobra.Command, args []string) error {
	base, err := cmd.Flags().GetInt("base")
	if err != nil {
		return err
	}
	check, err := cmd.Flags().GetString("check")
	if err != nil {
		return err
	}

	m, err := bignum.ParseNatural(args[0], base)
	if err != nil {
		return err
	}
	if m.IsZero() {
		return fmt.Errorf("modulus must be non-zero")
	}

	data := bignum.PrecomputeModMul(m)
	log.Info().
		Str("modulus", m.Text(16)).
		Int("limbs", m.LimbCount()).
		Uint64("bits", m.BitLen()).
		Msg("precomputed")
	spew.Fdump(os.Stdout, data)

	if check == "" {
		return nil
	}

	parts := strings.Split(check, ",")
	if len(parts) != 2 {
		return fmt.Errorf("--check expects x,y, found %q", check)
	}
	x, err := bignum.ParseNatural(strings.TrimSpace(parts[0]), base)
	if err != nil {
		return err
	}
	y, err := bignum.ParseNatural(strings.TrimSpace(parts[1]), base)
	if err != nil {
		return err
	}
	if bignum.Larger(x, y).GreaterOrEqualTo(m) {
		log.Warn().Msg("operands are not reduced, reducing them first")
		x, y = x.Rem(m), y.Rem(m)
	}

	fast := x.ModMulPrecomputed(y, m, data)
	slow := x.ModMulPrecomputed(y, m, bignum.ModMulData{})
	log.Debug().
		Str("x", x.Text(base)).
		Str("y", y.Text(base)).
		Msg("operands")

	fmt.Printf("precomputed: %s\n", fast.Text(base))
	fmt.Printf("division:    %s\n", slow.Text(base))
	if !fast.Equal(slow) {
		return fmt.Errorf("results disagree: %s != %s", fast.Text(base), slow.Text(base))
	}
	return nil
}
