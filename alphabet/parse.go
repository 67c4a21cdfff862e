package alphabet

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/basex-go/basex/internal/hash"
)

// parsed caches custom alphabets constructed by Parse, keyed by the
// xxHash64 fingerprint of their symbol table. Values are *Static.
var parsed sync.Map

// Parse resolves a textual alphabet selector into an Alphabet.
//
// Accepted forms:
//
//	bitcoin | monero | ripple | flickr    named constants
//	custom(<symbols>)                     table built from <symbols>
//
// Custom alphabets are validated once and cached, so repeatedly parsing
// the same selector (e.g. per CLI invocation or per request) does not
// re-run validation. Cache hits are verified against the symbol bytes:
// a fingerprint collision falls back to constructing a fresh alphabet,
// never to returning the wrong one.
func Parse(selector string) (Alphabet, error) {
	switch selector {
	case "bitcoin":
		return Bitcoin, nil
	case "monero":
		return Monero, nil
	case "ripple":
		return Ripple, nil
	case "flickr":
		return Flickr, nil
	}

	if inner, ok := customSymbols(selector); ok {
		return parseCustom(inner)
	}

	return nil, fmt.Errorf("%q is not a known alphabet", selector)
}

// customSymbols extracts the symbol table from a "custom(...)" selector.
func customSymbols(selector string) (string, bool) {
	if !strings.HasPrefix(selector, "custom(") || !strings.HasSuffix(selector, ")") {
		return "", false
	}

	return selector[len("custom(") : len(selector)-1], true
}

func parseCustom(symbols string) (Alphabet, error) {
	id := hash.ID([]byte(symbols))
	if cached, ok := parsed.Load(id); ok {
		a := cached.(*Static)
		if bytes.Equal(a.symbols, []byte(symbols)) {
			return a, nil
		}
		// Fingerprint collision: construct without caching.
		return New([]byte(symbols))
	}

	a, err := New([]byte(symbols))
	if err != nil {
		return nil, err
	}
	parsed.Store(id, a)

	return a, nil
}
