package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/bitint/bitstring"
	"github.com/calebcase/bitint/control"
	"github.com/calebcase/bitint/decimal"
	"github.com/calebcase/bitint/integer"
)

var Version string

const (
	verbosityF = "verbosity"
	decimalF   = "decimal"

	defaultVerbosity = "warn"
	defaultDecimal   = false

	verbosityUsage = `Verbosity of the logs. Options:
debug, info, warn, error
`
	decimalUsage = "Read operands and print results in base 10 instead of base 2."
)

type app struct {
	log *zap.Logger

	verbosity string
	decimal   bool
}

// NewCmd returns the bitcalc command tree.
func NewCmd() *cobra.Command {
	a := &app{
		log: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:     "bitcalc [flags] <command>",
		Short:   "Arbitrary precision unsigned arithmetic on bit strings.",
		Version: Version,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
			a.log, err = newLogger(a.verbosity, cmd.ErrOrStderr())

			return err
		},
	}

	root.PersistentFlags().StringVar(&a.verbosity, verbosityF, defaultVerbosity, verbosityUsage)
	root.PersistentFlags().BoolVarP(&a.decimal, decimalF, "d", defaultDecimal, decimalUsage)

	root.AddCommand(
		a.binaryCmd("add", "Print a + b.", func(x, y bitstring.BitString) ([]bitstring.BitString, error) {
			return []bitstring.BitString{bitstring.Add(x, y)}, nil
		}),
		a.binaryCmd("sub", "Print a - b (a must not be less than b).", func(x, y bitstring.BitString) ([]bitstring.BitString, error) {
			d, err := bitstring.Sub(x, y)
			if err != nil {
				return nil, err
			}

			return []bitstring.BitString{d}, nil
		}),
		a.binaryCmd("mul", "Print a * b.", func(x, y bitstring.BitString) ([]bitstring.BitString, error) {
			return []bitstring.BitString{bitstring.Mul(x, y)}, nil
		}),
		a.binaryCmd("divmod", "Print the quotient and remainder of a / b.", func(x, y bitstring.BitString) ([]bitstring.BitString, error) {
			q, r, err := bitstring.DivMod(x, y)
			if err != nil {
				return nil, err
			}

			return []bitstring.BitString{q, r}, nil
		}),
		a.cmpCmd(),
		a.normCmd(),
		a.encodeCmd(),
		a.decodeCmd(),
	)

	return root
}

func (a *app) parse(s string) (bitstring.BitString, error) {
	if a.decimal {
		return decimal.Parse(s)
	}

	return bitstring.Parse(s)
}

func (a *app) format(b bitstring.BitString) string {
	if a.decimal {
		return decimal.Format(b)
	}

	return b.String()
}

func (a *app) operands(args []string) ([]bitstring.BitString, error) {
	out := make([]bitstring.BitString, 0, len(args))
	for _, arg := range args {
		b, err := a.parse(arg)
		if err != nil {
			return nil, err
		}

		out = append(out, b)
	}

	return out, nil
}

func (a *app) print(w io.Writer, results ...bitstring.BitString) error {
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprint(w, " "); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprint(w, a.format(r)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)

	return err
}

type binaryOp func(x, y bitstring.BitString) ([]bitstring.BitString, error)

func (a *app) binaryCmd(name, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   name + " a b",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := a.operands(args)
			if err != nil {
				return err
			}

			results, err := op(ops[0], ops[1])
			if err != nil {
				a.log.Warn("operation failed",
					zap.String("op", name),
					zap.Stringer("a", ops[0]),
					zap.Stringer("b", ops[1]),
					zap.Error(err),
				)

				return err
			}

			a.log.Debug("operation",
				zap.String("op", name),
				zap.Stringer("a", ops[0]),
				zap.Stringer("b", ops[1]),
				zap.Stringers("results", results),
			)

			return a.print(cmd.OutOrStdout(), results...)
		},
	}
}

func (a *app) cmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp a b",
		Short: "Print less, equal or greater.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := a.operands(args)
			if err != nil {
				return err
			}

			o := bitstring.Compare(ops[0], ops[1])
			a.log.Debug("compare", zap.Stringer("a", ops[0]), zap.Stringer("b", ops[1]), zap.Stringer("ordering", o))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), o)

			return err
		},
	}
}

func (a *app) normCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "norm s",
		Short: "Print s without leading zeros.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.parse(args[0])
			if err != nil {
				return err
			}

			return a.print(cmd.OutOrStdout(), b.Normalize())
		},
	}
}

func (a *app) encodeCmd() *cobra.Command {
	var bits uint64

	cmd := &cobra.Command{
		Use:   "encode values...",
		Short: "Print the hex encoded integer block stream for the values.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := a.operands(args)
			if err != nil {
				return err
			}

			buf := &bytes.Buffer{}
			enc := integer.NewEncoder(integer.Schema{Bits: bits}, control.NewEncoder(buf))

			for _, op := range ops {
				err = enc.Encode(&integer.Block{Value: op})
				if err != nil {
					return err
				}
			}

			a.log.Debug("encoded", zap.Int("values", len(ops)), zap.Int("bytes", buf.Len()))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf.Bytes()))

			return err
		},
	}

	cmd.Flags().Uint64Var(&bits, "bits", 0, "Maximum significant bits per value (0 is unbounded).")

	return cmd
}

func (a *app) decodeCmd() *cobra.Command {
	var bits uint64

	cmd := &cobra.Command{
		Use:   "decode hex",
		Short: "Print the values of a hex encoded integer block stream, one per line.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(args[0])
			if err != nil {
				return err
			}

			dec := integer.NewDecoder(integer.Schema{Bits: bits}, control.NewDecoder(bytes.NewReader(data)))

			for {
				blk := &integer.Block{}

				err = dec.Decode(blk)
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}

				err = a.print(cmd.OutOrStdout(), blk.Value)
				if err != nil {
					return err
				}
			}
		},
	}

	cmd.Flags().Uint64Var(&bits, "bits", 0, "Maximum significant bits per value (0 is unbounded).")

	return cmd
}
