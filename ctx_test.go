package aswire

import (
	"bytes"
	"errors"
	"testing"
)

// -----------------------------------------------------------------------------
// Serialization tests
// -----------------------------------------------------------------------------

func TestCTXToBytes(t *testing.T) {
	ctx := []*CDTContext{
		CtxListIndex(-1),
		CtxMapKeyCreate(NewValue("k"), MapOrderKeyOrdered),
	}
	got, err := CTXToBytes(nil, ctx)
	if err != nil {
		t.Fatal(err)
	}
	// flat 4-element array: 0x10, -1, 0x22|0x80, "k"
	want := []byte{0x94, 0x10, 0xff, 0xcc, 0xa2, 0xa2, 0x03, 'k'}
	if !bytes.Equal(got, want) {
		t.Errorf("CTXToBytes = % x, want % x", got, want)
	}
}

func TestCTXRoundtrip(t *testing.T) {
	ctx := []*CDTContext{
		CtxListIndex(3),
		CtxListRank(-1),
		CtxListValue(NewValue("v")),
		CtxMapIndex(0),
		CtxMapRank(2),
		CtxMapKey(NewValue("k")),
		CtxMapValue(NewValue(int64(9))),
	}
	data, err := CTXToBytes(nil, ctx)
	if err != nil {
		t.Fatal(err)
	}
	got, err := CTXFromBytes(nil, data)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(ctx) {
		t.Fatalf("decoded %d steps, want %d", len(got), len(ctx))
	}
	for i := range ctx {
		if got[i].ID != ctx[i].ID {
			t.Errorf("step %d: id = %#x, want %#x", i, got[i].ID, ctx[i].ID)
		}
		if !ValueEquals(got[i].Value, ctx[i].Value) {
			t.Errorf("step %d: value = %v, want %v", i, got[i].Value, ctx[i].Value)
		}
	}
}

func TestCTXBase64Roundtrip(t *testing.T) {
	ctx := []*CDTContext{
		CtxMapKeyCreate(NewValue("tags"), MapOrderKeyOrdered),
		CtxListIndex(-1),
	}
	s, err := CTXToBase64(nil, ctx)
	if err != nil {
		t.Fatal(err)
	}
	got, err := CTXFromBase64(nil, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != ctx[0].ID || got[1].ID != ctx[1].ID {
		t.Errorf("decoded steps %v, want %v", got, ctx)
	}
}

// -----------------------------------------------------------------------------
// Error path tests
// -----------------------------------------------------------------------------

func TestCTXFromBytesErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"odd element count", []byte{0x91, 0x05}},
		{"non-integer id", []byte{0x92, 0xa2, 0x03, 'k', 0x05}},
		{"not a list", []byte{0x05}},
		{"truncated", []byte{0x94, 0x10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CTXFromBytes(nil, tt.data)
			if err == nil {
				t.Fatalf("CTXFromBytes(% x) succeeded, want error", tt.data)
			}
			var e *Error
			if !errors.As(err, &e) || e.ResultCode != ResultParseError {
				t.Errorf("error = %v, want parse error", err)
			}
		})
	}
}

func TestCTXFromBase64Invalid(t *testing.T) {
	if _, err := CTXFromBase64(nil, "not base64!"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
}

// -----------------------------------------------------------------------------
// Selector flag tests
// -----------------------------------------------------------------------------

func TestCtxCreateFlags(t *testing.T) {
	tests := []struct {
		name string
		ctx  *CDTContext
		id   int
	}{
		{"list index plain", CtxListIndex(0), 0x10},
		{"list index create unordered", CtxListIndexCreate(0, ListOrderUnordered, false), 0x50},
		{"list index create padded", CtxListIndexCreate(0, ListOrderUnordered, true), 0x90},
		{"list index create ordered", CtxListIndexCreate(0, ListOrderOrdered, false), 0xd0},
		{"map key plain", CtxMapKey(NewValue("k")), 0x22},
		{"map key create unordered", CtxMapKeyCreate(NewValue("k"), MapOrderUnordered), 0x62},
		{"map key create key ordered", CtxMapKeyCreate(NewValue("k"), MapOrderKeyOrdered), 0xa2},
		{"map key create kv ordered", CtxMapKeyCreate(NewValue("k"), MapOrderKeyValueOrdered), 0xe2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ctx.ID != tt.id {
				t.Errorf("ID = %#x, want %#x", tt.ctx.ID, tt.id)
			}
		})
	}
}
