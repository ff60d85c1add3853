package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/internal/crypto/uint280"
	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

var errVerificationFailed = errors.New("proof verification failed")

// parseInt accepts decimal or 0x-prefixed hex.
func parseInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errors.Errorf("invalid integer %q", s)
	}
	return n, nil
}

func parseHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex %q", s)
	}
	return b, nil
}

func baseMultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "basemult <scalar>",
		Short: "Compute scalar * G.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := selectedGroup()
			if err != nil {
				return err
			}
			k, err := parseInt(args[0])
			if err != nil {
				return err
			}
			p, err := g.ScalarBaseMult(k)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(p))
			return nil
		},
	}
}

func multCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mult <point> <scalar>",
		Short: "Compute scalar * point.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := selectedGroup()
			if err != nil {
				return err
			}
			pt, err := parseHex(args[0])
			if err != nil {
				return err
			}
			k, err := parseInt(args[1])
			if err != nil {
				return err
			}
			p, err := g.ScalarMult(pt, k)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(p))
			return nil
		},
	}
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <point> <point>",
		Short: "Add two points.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := selectedGroup()
			if err != nil {
				return err
			}
			a, err := parseHex(args[0])
			if err != nil {
				return err
			}
			b, err := parseHex(args[1])
			if err != nil {
				return err
			}
			p, err := g.Add(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(p))
			return nil
		},
	}
}

func proveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prove <secret>",
		Short: "Print the public key and a Schnorr proof of knowledge of secret.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := selectedGroup()
			if err != nil {
				return err
			}
			x, err := parseInt(args[0])
			if err != nil {
				return err
			}
			pub, proof, err := g.Prove(x)
			if err != nil {
				return err
			}
			logger.Info("proof generated", zap.String("curve", g.Name()), zap.Int("size", len(proof)))
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, hex.EncodeToString(pub))
			fmt.Fprintln(out, hex.EncodeToString(proof))
			return nil
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <public key> <proof>",
		Short: "Verify a Schnorr proof produced by prove.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := selectedGroup()
			if err != nil {
				return err
			}
			pub, err := parseHex(args[0])
			if err != nil {
				return err
			}
			proof, err := parseHex(args[1])
			if err != nil {
				return err
			}
			if !g.Verify(pub, proof) {
				logger.Warn("proof rejected", zap.String("curve", g.Name()))
				return errVerificationFailed
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func divCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "div <dividend> <divisor>",
		Short: "Divide two 280-bit unsigned integers, printing quotient and remainder.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseUint(args[0])
			if err != nil {
				return err
			}
			b, err := parseUint(args[1])
			if err != nil {
				return err
			}
			q, r, err := a.Div(b)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, q.Big())
			fmt.Fprintln(out, r.Big())
			return nil
		},
	}
}

func parseUint(s string) (uint280.Uint, error) {
	n, err := parseInt(s)
	if err != nil {
		return uint280.Uint{}, err
	}
	return uint280.FromBig(n)
}

func invertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invert <element>",
		Short: "Invert an element of the base field of the selected curve.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			var inv *big.Int
			switch name := viper.GetString(keyCurve); name {
			case curves.Wei25519:
				inv, err = invert[field.Fp25519](n)
			case curves.Secp256k1:
				inv, err = invert[field.FpSecp256k1](n)
			default:
				err = errors.Wrapf(ecc.ErrUnknownCurve, "%q", name)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), inv)
			return nil
		},
	}
}

func invert[P field.Params](n *big.Int) (*big.Int, error) {
	e, err := field.FromBig[P](n)
	if err != nil {
		return nil, err
	}
	inv, err := e.Invert()
	if err != nil {
		return nil, err
	}
	return inv.Big(), nil
}
