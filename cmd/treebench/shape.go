package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

func shapeCmd() *cobra.Command {
	var (
		engine string
		seed   uint64
	)
	cmd := &cobra.Command{
		Use:   "shape --engine <AVL|RB|Treap> <key>...",
		Short: "Build one tree from keys and print its in-order pairs and levels",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]int, len(args))
			for i, a := range args {
				k, err := cast.ToIntE(a)
				if err != nil {
					return fmt.Errorf("key %q: %w", a, err)
				}
				keys[i] = k
			}
			w := cmd.OutOrStdout()
			switch engine {
			case "AVL":
				return describe[int](w, "height", Trees.NewAVL[int](), keys)
			case "RB":
				return describe[Trees.Color](w, "color", Trees.NewRBTree[int](), keys)
			case "Treap":
				return describe[uint32](w, "priority", Trees.NewTreap[int, uint32](rand.NewPCG(seed, seed)), keys)
			}
			return fmt.Errorf("unknown engine %q", engine)
		},
	}
	cmd.Flags().StringVarP(&engine, "engine", "e", "AVL", "AVL, RB or Treap")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "treap priority seed")
	return cmd
}

func describe[A any](w io.Writer, aux string, tree Trees.Tree[int, A], keys []int) error {
	for _, k := range keys {
		if err := tree.Insert(k); err != nil {
			return err
		}
	}
	if err := tree.Check(); err != nil {
		return err
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"key", aux})
	for k, a := range tree.All() {
		tbl.AppendRow(table.Row{k, a})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("%d keys", tree.Len()), fmt.Sprintf("height %d", tree.Height())})
	if _, err := fmt.Fprintln(w, tbl.Render()); err != nil {
		return err
	}

	for i, l := range tree.Levels() {
		s := make([]string, len(l))
		for j, k := range l {
			s[j] = cast.ToString(k)
		}
		if _, err := fmt.Fprintf(w, "%d: %s\n", i, strings.Join(s, " ")); err != nil {
			return err
		}
	}
	return nil
}
