package yaml

import (
	"bytes"
	"strconv"
	"testing"
)

// TestScanReaderStreaming verifies scanning works with larger data
func TestScanReaderStreaming(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 100; i++ {
		buf.WriteString("key")
		buf.WriteString(strconv.Itoa(i))
		buf.WriteString(": value\n")
	}

	toks, err := ScanReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ScanReader() error: %v", err)
	}

	scalars := 0
	for tok := range toks.All() {
		switch tok.Kind {
		case Scalar:
			scalars++
		case Error:
			t.Fatalf("unexpected error token %v", tok)
		}
	}

	// Every line holds a key and a value
	if scalars != 200 {
		t.Errorf("Got %d scalars, want 200", scalars)
	}
}

// TestScanLazyPull verifies that a consumer can stop pulling at any point
func TestScanLazyPull(t *testing.T) {
	toks := ScanString("a\nb\nc\n")

	tok, ok := toks.Next()
	if !ok || tok.Kind != StreamStart {
		t.Fatalf("first token = %v, want StreamStart", tok)
	}
	tok, ok = toks.Next()
	if !ok || toks.Text(tok) != "a" {
		t.Fatalf("second token = %v, want scalar a", tok)
	}

	// Remaining tokens are still available after a pause
	rest := toks.Collect()
	if len(rest) != 3 {
		t.Errorf("Collect() returned %d tokens, want 3", len(rest))
	}
}
