package aswire

import (
	"bytes"
	"errors"
	"testing"
)

func expBytes(t *testing.T, exp *Exp) []byte {
	t.Helper()
	b, err := exp.Bytes(nil)
	if err != nil {
		t.Fatalf("packing expression: %v", err)
	}
	return b
}

// -----------------------------------------------------------------------------
// Literals and bin access
// -----------------------------------------------------------------------------

func TestExpLiteralVectors(t *testing.T) {
	tests := []struct {
		name string
		exp  *Exp
		want []byte
	}{
		{"nil", ExpNilVal(), []byte{0xc0}},
		{"int", ExpIntVal(5), []byte{0x05}},
		{"negative int", ExpIntVal(-1), []byte{0xff}},
		{"float", ExpFloatVal(1.5), []byte{0xcb, 0x3f, 0xf8, 0, 0, 0, 0, 0, 0}},
		{"string", ExpStringVal("a"), []byte{0xa2, 0x03, 'a'}},
		{"blob", ExpBlobVal([]byte{0xff}), []byte{0xa2, 0x04, 0xff}},
		{"geo", ExpGeoVal("{}"), []byte{0xa6, 0x17, 0x00, 0x00, 0x00, '{', '}'}},
		{
			"list quotes itself",
			ExpListVal(NewValue(1), NewValue(2)),
			[]byte{0x92, 0x7e, 0x92, 0x01, 0x02},
		},
		{
			"arbitrary list value quotes itself",
			ExpVal(ValueArray{NewValue(1), NewValue(2)}),
			[]byte{0x92, 0x7e, 0x92, 0x01, 0x02},
		},
		{"map", ExpMapVal(MapValue{"a": 1}), []byte{0x81, 0xa2, 0x03, 'a', 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expBytes(t, tt.exp); !bytes.Equal(got, tt.want) {
				t.Errorf("packed = % x, want % x", got, tt.want)
			}
		})
	}
}

func TestExpBoolLiteralFollowsConfig(t *testing.T) {
	got, err := ExpBoolVal(true).Bytes(&Config{UseBoolBin: true})
	if err != nil {
		t.Fatalf("packing expression: %v", err)
	}
	if want := []byte{0xc3}; !bytes.Equal(got, want) {
		t.Errorf("packed = % x, want % x", got, want)
	}
}

func TestExpBinAndMetadataVectors(t *testing.T) {
	tests := []struct {
		name string
		exp  *Exp
		want []byte
	}{
		{"int bin", ExpIntBin("a"), []byte{0x93, 0x51, 0x02, 0xa2, 0x03, 'a'}},
		{"string bin", ExpStringBin("s"), []byte{0x93, 0x51, 0x03, 0xa2, 0x03, 's'}},
		{"blob bin", ExpBlobBin("b"), []byte{0x93, 0x51, 0x06, 0xa2, 0x03, 'b'}},
		{"list bin", ExpListBin("l"), []byte{0x93, 0x51, 0x04, 0xa2, 0x03, 'l'}},
		{"hll bin", ExpHLLBin("h"), []byte{0x93, 0x51, 0x09, 0xa2, 0x03, 'h'}},
		{"bin type", ExpBinType("a"), []byte{0x92, 0x52, 0xa2, 0x03, 'a'}},
		{
			"bin exists desugars to type != 0",
			ExpBinExists("a"),
			[]byte{0x93, 0x02, 0x92, 0x52, 0xa2, 0x03, 'a', 0x00},
		},
		{"key", ExpKey(ExpTypeInt), []byte{0x92, 0x50, 0x02}},
		{"key exists", ExpKeyExists(), []byte{0x91, 0x47}},
		{"set name", ExpSetName(), []byte{0x91, 0x46}},
		{"ttl", ExpTTL(), []byte{0x91, 0x45}},
		{"last update", ExpLastUpdate(), []byte{0x91, 0x42}},
		{"is tombstone", ExpIsTombstone(), []byte{0x91, 0x48}},
		{"record size", ExpRecordSize(), []byte{0x91, 0x4a}},
		{"digest modulo", ExpDigestModulo(3), []byte{0x92, 0x40, 0x03}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expBytes(t, tt.exp); !bytes.Equal(got, tt.want) {
				t.Errorf("packed = % x, want % x", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// Operators
// -----------------------------------------------------------------------------

func TestExpOperatorVectors(t *testing.T) {
	tests := []struct {
		name string
		exp  *Exp
		want []byte
	}{
		{
			"eq",
			ExpEQ(ExpIntBin("a"), ExpIntVal(5)),
			[]byte{0x93, 0x01, 0x93, 0x51, 0x02, 0xa2, 0x03, 'a', 0x05},
		},
		{
			"and of two comparisons",
			ExpAnd(ExpGT(ExpIntBin("a"), ExpIntVal(0)), ExpLT(ExpIntBin("a"), ExpIntVal(10))),
			[]byte{
				0x93, 0x10,
				0x93, 0x03, 0x93, 0x51, 0x02, 0xa2, 0x03, 'a', 0x00,
				0x93, 0x05, 0x93, 0x51, 0x02, 0xa2, 0x03, 'a', 0x0a,
			},
		},
		{
			"not",
			ExpNot(ExpKeyExists()),
			[]byte{0x92, 0x12, 0x91, 0x47},
		},
		{
			"regex",
			ExpRegexCompare("ab.*", ExpRegexFlagICase, ExpStringBin("s")),
			[]byte{0x94, 0x07, 0x02, 0xa5, 0x03, 'a', 'b', '.', '*', 0x93, 0x51, 0x03, 0xa2, 0x03, 's'},
		},
		{
			"num add",
			ExpNumAdd(ExpIntBin("a"), ExpIntVal(1)),
			[]byte{0x93, 0x14, 0x93, 0x51, 0x02, 0xa2, 0x03, 'a', 0x01},
		},
		{
			"int and",
			ExpIntAnd(ExpIntBin("a"), ExpIntVal(255)),
			[]byte{0x93, 0x20, 0x93, 0x51, 0x02, 0xa2, 0x03, 'a', 0xcc, 0xff},
		},
		{
			"min",
			ExpNumMin(ExpIntVal(1), ExpIntVal(2)),
			[]byte{0x93, 0x32, 0x01, 0x02},
		},
		{
			"cond",
			ExpCond(ExpBoolBin("c"), ExpIntVal(1), ExpIntVal(0)),
			[]byte{0x94, 0x7b, 0x93, 0x51, 0x01, 0xa2, 0x03, 'c', 0x01, 0x00},
		},
		{
			"let def var",
			ExpLet(ExpDef("x", ExpIntVal(5)), ExpVar("x")),
			[]byte{0x93, 0x7d, 0x92, 0xa2, 0x03, 'x', 0x05, 0x92, 0x7c, 0xa2, 0x03, 'x'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expBytes(t, tt.exp); !bytes.Equal(got, tt.want) {
				t.Errorf("packed = % x, want % x", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// Module calls
// -----------------------------------------------------------------------------

func TestExpModuleCallVectors(t *testing.T) {
	listBin := []byte{0x93, 0x51, 0x04, 0xa2, 0x03, 'l'}

	tests := []struct {
		name string
		exp  *Exp
		want []byte
	}{
		{
			"list size",
			ExpListSize(ExpListBin("l")),
			append([]byte{0x95, 0x7f, 0x02, 0x00, 0x91, 0x10}, listBin...),
		},
		{
			"list size through map key context",
			ExpListSize(ExpListBin("l"), CtxMapKey(NewValue("a"))),
			append([]byte{
				0x95, 0x7f, 0x02, 0x00,
				0x93, 0xff, 0x92, 0x22, 0xa2, 0x03, 'a', 0x91, 0x10,
			}, listBin...),
		},
		{
			"list append carries modify flag",
			ExpListAppend(nil, ExpIntVal(5), ExpListBin("l")),
			append([]byte{0x95, 0x7f, 0x04, 0x40, 0x94, 0x01, 0x05, 0x00, 0x00}, listBin...),
		},
		{
			"list get by index",
			ExpListGetByIndex(ListReturnTypeValue, ExpTypeInt, ExpIntVal(0), ExpListBin("l")),
			append([]byte{0x95, 0x7f, 0x02, 0x00, 0x93, 0x13, 0x07, 0x00}, listBin...),
		},
		{
			"map size",
			ExpMapSize(ExpMapBin("m")),
			[]byte{0x95, 0x7f, 0x02, 0x00, 0x91, 0x60, 0x93, 0x51, 0x05, 0xa2, 0x03, 'm'},
		},
		{
			"map put carries modify flag",
			ExpMapPut(nil, ExpStringVal("k"), ExpIntVal(5), ExpMapBin("m")),
			[]byte{
				0x95, 0x7f, 0x05, 0x40,
				0x94, 0x43, 0xa2, 0x03, 'k', 0x05, 0x00,
				0x93, 0x51, 0x05, 0xa2, 0x03, 'm',
			},
		},
		{
			"bit count",
			ExpBitCount(ExpIntVal(0), ExpIntVal(64), ExpBlobBin("b")),
			[]byte{
				0x95, 0x7f, 0x02, 0x01,
				0x93, 0x33, 0x00, 0x40,
				0x93, 0x51, 0x06, 0xa2, 0x03, 'b',
			},
		},
		{
			"hll count",
			ExpHLLGetCount(ExpHLLBin("h")),
			[]byte{0x95, 0x7f, 0x02, 0x02, 0x91, 0x32, 0x93, 0x51, 0x09, 0xa2, 0x03, 'h'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expBytes(t, tt.exp); !bytes.Equal(got, tt.want) {
				t.Errorf("packed = % x, want % x", got, tt.want)
			}
		})
	}
}

func TestExpGetByRangeReturnTypeError(t *testing.T) {
	_, err := ExpListGetByIndexRange(ListReturnTypeInverted, ExpIntVal(0), ExpListBin("l"))
	if err == nil {
		t.Fatal("expected an error for a bare inverted return type")
	}
	var aerr *Error
	if !errors.As(err, &aerr) || aerr.ResultCode != ResultParameterError {
		t.Errorf("err = %v, want ResultParameterError", err)
	}
}

// -----------------------------------------------------------------------------
// Expression operations
// -----------------------------------------------------------------------------

func TestExpReadOp(t *testing.T) {
	op, err := ExpReadOp(nil, "r", ExpIntVal(5), ExpReadFlagsDefault)
	got := binPayload(t, op, err)
	if want := []byte{0x92, 0x05, 0x00}; !bytes.Equal(got, want) {
		t.Errorf("payload = % x, want % x", got, want)
	}
	if op.OpType != OpTypeExpRead {
		t.Errorf("OpType = %d, want %d", op.OpType, OpTypeExpRead)
	}
	if op.BinName != "r" {
		t.Errorf("BinName = %q, want %q", op.BinName, "r")
	}
}

func TestExpWriteOp(t *testing.T) {
	op, err := ExpWriteOp(nil, "b", ExpNumAdd(ExpIntBin("b"), ExpIntVal(1)), ExpWriteFlagsCreateOnly)
	got := binPayload(t, op, err)
	want := []byte{0x92, 0x93, 0x14, 0x93, 0x51, 0x02, 0xa2, 0x03, 'b', 0x01, 0x01}
	if !bytes.Equal(got, want) {
		t.Errorf("payload = % x, want % x", got, want)
	}
	if op.OpType != OpTypeExpModify {
		t.Errorf("OpType = %d, want %d", op.OpType, OpTypeExpModify)
	}
}
