package wfc

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeModelRoundTrips(t *testing.T) {
	model, err := Learn([]Tilemap{checkerboard(10, 10)}, 2)
	if err != nil {
		t.Fatalf("Learn: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeModel(&buf, model); err != nil {
		t.Fatalf("EncodeModel: %v", err)
	}

	decoded, err := DecodeModel(&buf)
	if err != nil {
		t.Fatalf("DecodeModel: %v", err)
	}

	if decoded.N != model.N {
		t.Fatalf("N: want %d, got %d", model.N, decoded.N)
	}
	if decoded.P() != model.P() {
		t.Fatalf("P: want %d, got %d", model.P(), decoded.P())
	}
	for i := range model.Patterns {
		if decoded.Patterns[i].key() != model.Patterns[i].key() {
			t.Fatalf("pattern %d changed across encode/decode", i)
		}
		if decoded.Weights[i] != model.Weights[i] {
			t.Fatalf("weight %d changed across encode/decode", i)
		}
		for d := 0; d < numDirections; d++ {
			if !decoded.Adjacency[i][d].Equal(model.Adjacency[i][d]) {
				t.Fatalf("adjacency[%d][%d] changed across encode/decode", i, d)
			}
		}
	}
}

func TestDecodeModelRejectsTruncatedInput(t *testing.T) {
	if _, err := DecodeModel(bytes.NewReader(nil)); err == nil {
		t.Fatalf("decoding an empty stream should fail")
	}
}
