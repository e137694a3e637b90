package main

import (
	"fmt"

	"github.com/alexshd/checkbench"
	"github.com/alexshd/checkbench/dataset"
	"github.com/alexshd/checkbench/integer"
	"github.com/alexshd/checkbench/palindrome"
)

// workspace is the registry of every suite over freshly generated corpora.
// Parent and children build it from the same seed and size, so a case id
// names the same inputs in every process.
type workspace struct {
	registry *checkbench.Registry
	corpora  []*dataset.Corpus
}

func newWorkspace(seed int64, size int) (*workspace, error) {
	ws := &workspace{
		registry: checkbench.NewRegistry(),
		corpora: []*dataset.Corpus{
			dataset.Integers(seed, size),
			dataset.Palindromes(seed, size),
		},
	}
	tables := [][]checkbench.Variant{integer.Variants(), palindrome.Variants()}

	for i, c := range ws.corpora {
		if err := ws.registry.Register(checkbench.NewSuite(c, tables[i])); err != nil {
			return nil, fmt.Errorf("register %s: %w", c.Name(), err)
		}
	}
	return ws, nil
}

// digests maps corpus name to its content digest.
func (ws *workspace) digests() map[string]string {
	out := make(map[string]string, len(ws.corpora))
	for _, c := range ws.corpora {
		out[c.Name()] = c.CorpusDigest()
	}
	return out
}
