// Command tysys-demo exercises the type-system engine's facets against the
// illustrative arithmetic-expression grammar from a terminal.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/latticefold/tysys/internal/arithhost"
	"github.com/latticefold/tysys/internal/types"
)

func newEngine(trace bool) (*types.Engine, *arithhost.Lattice) {
	config := types.EngineConfig{}
	if trace {
		config.Trace = log.New(os.Stderr, "tysys: ", log.LstdFlags)
	}

	e := types.NewEngine(config)
	arithhost.RegisterBaseRules(e)

	lattice, problem := arithhost.BuildLattice(e)
	if problem != nil {
		log.Fatal(problem)
	}

	if problem := lattice.DeclareArithmeticPlus(e); problem != nil {
		log.Fatal(problem)
	}

	return e, lattice
}

func typeByName(lattice *arithhost.Lattice, name string) (*types.Type, error) {
	switch name {
	case "boolean":
		return lattice.Boolean, nil
	case "integer":
		return lattice.Integer, nil
	case "double":
		return lattice.Double, nil
	case "string":
		return lattice.String, nil
	default:
		return nil, fmt.Errorf("unknown primitive %q (want boolean|integer|double|string)", name)
	}
}

func main() {
	root := &cobra.Command{
		Use:   "tysys-demo",
		Short: "Exercise the type-system engine against a sample arithmetic grammar",
	}

	var trace bool
	root.PersistentFlags().BoolVar(&trace, "trace", false, "attach a stderr logger to the engine config (the engine writes no trace lines to it)")

	root.AddCommand(
		newCheckAssignableCmd(&trace),
		newResolveOverloadCmd(&trace),
		newInferCmd(&trace),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newCheckAssignableCmd(trace *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "check-assignable <from> <to>",
		Short: "Report whether one primitive is assignable to another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, lattice := newEngine(*trace)

			from, err := typeByName(lattice, args[0])
			if err != nil {
				return err
			}

			to, err := typeByName(lattice, args[1])
			if err != nil {
				return err
			}

			result := e.GetAssignabilityResult(from, to)
			if result.Assignable {
				fmt.Fprintf(cmd.OutOrStdout(), "assignable, path length %d\n", len(result.Path))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Problem.String())

			return nil
		},
	}
}

func newResolveOverloadCmd(trace *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve-overload <name> <arg1> [arg2 ...]",
		Short: "Resolve an overloaded function call against its candidate set",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, lattice := newEngine(*trace)

			name := args[0]

			argTypes := make([]*types.Type, 0, len(args)-1)

			for _, a := range args[1:] {
				t, err := typeByName(lattice, a)
				if err != nil {
					return err
				}

				argTypes = append(argTypes, t)
			}

			resolution := e.ResolveOverload(name, argTypes)
			if resolution.Problem != nil {
				fmt.Fprintln(cmd.OutOrStdout(), resolution.Problem.String())
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), resolution.Best.String())

			return nil
		},
	}
}

func newInferCmd(trace *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "infer <left> + <right>",
		Short: "Infer the type of `left + right` for two primitive operands",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[1] != "+" {
				return fmt.Errorf("only + is wired in this demo, got %q", args[1])
			}

			e, lattice := newEngine(*trace)

			left, err := typeByName(lattice, args[0])
			if err != nil {
				return err
			}

			right, err := typeByName(lattice, args[2])
			if err != nil {
				return err
			}

			node := arithhost.Binary{
				Op:    "+",
				Left:  arithhost.Literal{ValueType: left},
				Right: arithhost.Literal{ValueType: right},
			}

			result, problem := e.InferType(node, nil)
			if problem != nil {
				fmt.Fprintln(cmd.OutOrStdout(), problem.String())
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.String())

			return nil
		},
	}
}
