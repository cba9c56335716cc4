package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gordian-engine/mtree"
)

// proofDoc is the JSON document emitted by "mtree prove"
// and consumed by "mtree verify".
// All digests are lowercase hex.
type proofDoc struct {
	Hasher string    `json:"hasher"`
	Root   string    `json:"root"`
	Leaf   string    `json:"leaf"`
	Index  int       `json:"index"`
	Steps  []stepDoc `json:"steps"`
}

type stepDoc struct {
	Sibling string `json:"sibling"`
	Side    string `json:"side"`
}

func newProofDoc(hasherName string, root, leaf []byte, index int, proof mtree.Proof) proofDoc {
	doc := proofDoc{
		Hasher: hasherName,
		Root:   hex.EncodeToString(root),
		Leaf:   hex.EncodeToString(leaf),
		Index:  index,
		Steps:  make([]stepDoc, len(proof)),
	}

	for i, step := range proof {
		doc.Steps[i] = stepDoc{
			Sibling: hex.EncodeToString(step.Sibling),
			Side:    step.Side.String(),
		}
	}

	return doc
}

func writeProofDoc(w io.Writer, doc proofDoc) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func readProofDoc(stdin io.Reader, args []string) (proofDoc, error) {
	r := stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return proofDoc{}, err
		}
		defer f.Close()
		r = f
	}

	var doc proofDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return proofDoc{}, fmt.Errorf("malformed proof document: %w", err)
	}

	return doc, nil
}

// decode converts the hex fields back into the library's types.
func (d proofDoc) decode() (leafDigest []byte, index int, proof mtree.Proof, root []byte, err error) {
	root, err = hex.DecodeString(d.Root)
	if err != nil {
		return nil, 0, nil, nil, fmt.Errorf("bad root digest: %w", err)
	}

	leafDigest, err = hex.DecodeString(d.Leaf)
	if err != nil {
		return nil, 0, nil, nil, fmt.Errorf("bad leaf digest: %w", err)
	}

	proof = make(mtree.Proof, len(d.Steps))
	for i, s := range d.Steps {
		sib, err := hex.DecodeString(s.Sibling)
		if err != nil {
			return nil, 0, nil, nil, fmt.Errorf("bad sibling digest at step %d: %w", i, err)
		}

		var side mtree.Side
		switch s.Side {
		case "left":
			side = mtree.Left
		case "right":
			side = mtree.Right
		default:
			return nil, 0, nil, nil, fmt.Errorf("bad side %q at step %d", s.Side, i)
		}

		proof[i] = mtree.ProofStep{Sibling: sib, Side: side}
	}

	return leafDigest, d.Index, proof, root, nil
}
