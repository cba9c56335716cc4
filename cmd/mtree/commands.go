// Command mtree is a small driver for building Merkle trees
// over command-line items, emitting membership proofs,
// and re-verifying proofs from their JSON form alone.
//
// The mtree library deliberately defines no wire format;
// the JSON proof document used here belongs to this command.
package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gordian-engine/mtree"
	"github.com/gordian-engine/mtree/mthash"
	"github.com/gordian-engine/mtree/mthash/mtblake2b"
	"github.com/gordian-engine/mtree/mthash/mtblake3"
	"github.com/gordian-engine/mtree/mthash/mtsha256"
)

// logLevel is read dynamically by the handler in main,
// so the --debug flag can take effect after the logger is built.
var logLevel = new(slog.LevelVar)

func newRootCommand(log *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mtree",
		Short: "Build Merkle trees and emit or verify membership proofs",

		SilenceUsage: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	var (
		hasherName string
		compact    bool
		debug      bool
	)

	rootCmd.PersistentFlags().StringVar(
		&hasherName, "hasher", "sha256", "digest algorithm: sha256, blake2b, or blake3",
	)
	rootCmd.PersistentFlags().BoolVar(
		&compact, "compact", false, "retain only leaf digests and root, recomputing proofs on demand",
	)
	rootCmd.PersistentFlags().BoolVar(
		&debug, "debug", false, "enable debug logging",
	)
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if debug {
			logLevel.Set(slog.LevelDebug)
		}
	}

	newTree := func(items [][]byte) (mtree.Tree, mthash.Hasher, error) {
		h, err := hasherFor(hasherName)
		if err != nil {
			return nil, nil, err
		}

		var tree mtree.Tree
		if compact {
			tree, err = mtree.NewCompact(items, h)
		} else {
			tree, err = mtree.NewFull(items, h)
		}
		if err != nil {
			return nil, nil, err
		}

		log.Debug(
			"built tree",
			"hasher", hasherName,
			"compact", compact,
			"leaves", tree.LeafCount(),
			"height", tree.Height(),
		)

		return tree, h, nil
	}

	rootDigestCmd := &cobra.Command{
		Use:   "root ITEM...",
		Short: "Print the hex root digest committing to the items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, _, err := newTree(itemBytes(args))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%x\n", tree.Root())
			return nil
		},
	}

	proveCmd := &cobra.Command{
		Use:   "prove TARGET ITEM...",
		Short: "Emit a JSON membership proof for TARGET within the items",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, h, err := newTree(itemBytes(args[1:]))
			if err != nil {
				return err
			}

			target := make([]byte, h.Size())
			h.Leaf([]byte(args[0]), target[:0])

			idx, proof, ok := tree.ContainsHash(target)
			if !ok {
				return fmt.Errorf("no leaf hashes to %x (item %q)", target, args[0])
			}

			log.Debug("located leaf", "index", idx, "proof_len", len(proof))

			doc := newProofDoc(hasherName, tree.Root(), target, idx, proof)
			return writeProofDoc(cmd.OutOrStdout(), doc)
		},
	}

	verifyCmd := &cobra.Command{
		Use:   "verify [PROOF_FILE]",
		Short: "Re-verify a JSON proof against its embedded root digest",
		Long: strings.TrimSpace(`
Re-verify a JSON proof produced by "mtree prove".
Verification is a pure replay of the sibling path:
only the proof document is consulted, never the original items.
Reads standard input when PROOF_FILE is omitted.
`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readProofDoc(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			h, err := hasherFor(doc.Hasher)
			if err != nil {
				return err
			}

			leafDigest, index, proof, root, err := doc.decode()
			if err != nil {
				return err
			}

			if !mtree.Verify(h, leafDigest, index, proof, root) {
				color.New(color.FgRed).Fprintln(cmd.OutOrStdout(), "FAILED")
				return fmt.Errorf("proof does not verify against root %x", root)
			}

			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	rootCmd.AddCommand(rootDigestCmd, proveCmd, verifyCmd)
	return rootCmd
}

func hasherFor(name string) (mthash.Hasher, error) {
	switch name {
	case "sha256":
		return mtsha256.Hasher{}, nil
	case "blake2b":
		return mtblake2b.Hasher{}, nil
	case "blake3":
		return mtblake3.Hasher{}, nil
	}

	return nil, fmt.Errorf("unknown hasher %q (want sha256, blake2b, or blake3)", name)
}

func itemBytes(args []string) [][]byte {
	items := make([][]byte, len(args))
	for i, a := range args {
		items[i] = []byte(a)
	}
	return items
}
