package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-loess/stats/kernel"
)

const defaultKernelSize = 4097

var errNoKernels = errors.New("no matching kernel types")

func kernelName(t kernel.Type) string {
	return strings.ToLower(t.String())
}

func newKernelsCommand() *cobra.Command {
	var (
		size int
		list bool
	)

	cmd := &cobra.Command{
		Use:   "kernels [kernel-name ...]",
		Short: "Print properties of the weight kernels",
		Long: `Kernels prints the closed-form and numerically integrated properties
of the distance and robustness kernels. Peak is the maximum of the unit-area
kernel table. Without arguments all kernels are shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if list {
				printKernelList(out)
				return nil
			}

			types, unknown := resolveKernels(args)
			for _, name := range unknown {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: unknown kernel %q (use --list to see available)\n", name)
			}

			if len(types) == 0 {
				return errNoKernels
			}

			rendered, err := renderKernelTable(types, size)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, rendered)

			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", defaultKernelSize, "samples over [-1, 1] for numerical integration")
	cmd.Flags().BoolVar(&list, "list", false, "list available kernel names")

	return cmd
}

func printKernelList(w io.Writer) {
	names := make([]string, len(kernel.Types))
	for i, t := range kernel.Types {
		names[i] = kernelName(t)
	}

	slices.Sort(names)

	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func resolveKernels(names []string) (types []kernel.Type, unknown []string) {
	if len(names) == 0 {
		return slices.Clone(kernel.Types), nil
	}

	byName := make(map[string]kernel.Type, len(kernel.Types))
	for _, t := range kernel.Types {
		byName[kernelName(t)] = t
	}

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))

		t, ok := byName[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}

		types = append(types, t)
	}

	return types, unknown
}

func renderKernelTable(types []kernel.Type, size int) (string, error) {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.AppendHeader(table.Row{"Kernel", "Area", "Mu2", "R(K)", "Efficiency", "Area (num)", "Mu2 (num)", "R(K) (num)", "Peak"})

	for _, t := range types {
		meta := kernel.Info(t)

		a, err := kernel.Analyze(kernel.Generate(t, size))
		if err != nil {
			return "", fmt.Errorf("%s: %w", meta.Name, err)
		}

		tbl.AppendRow(table.Row{
			meta.Name,
			fmt.Sprintf("%.4f", meta.Area),
			fmt.Sprintf("%.4f", meta.SecondMoment),
			fmt.Sprintf("%.4f", meta.Roughness),
			fmt.Sprintf("%.4f", kernel.Efficiency(t)),
			fmt.Sprintf("%.4f", a.Area),
			fmt.Sprintf("%.4f", a.SecondMoment),
			fmt.Sprintf("%.4f", a.Roughness),
			fmt.Sprintf("%.4f", slices.Max(kernel.Generate(t, size, kernel.WithNormalize()))),
		})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("size=%d", size)})

	return tbl.Render(), nil
}
