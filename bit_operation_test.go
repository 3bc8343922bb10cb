package aswire

import (
	"bytes"
	"testing"
)

func TestBitOperationVectors(t *testing.T) {
	noFail := &BitPolicy{Flags: BitWriteFlagsNoFail}

	tests := []struct {
		name   string
		build  func() (*Operation, error)
		want   []byte
		opType OperationType
	}{
		{
			"resize",
			func() (*Operation, error) { return BitResizeOp(nil, nil, "b", 4, BitResizeFlagsGrowOnly) },
			[]byte{0x93, 0x00, 0x04, 0x00, 0x02},
			OpTypeBitModify,
		},
		{
			"insert",
			func() (*Operation, error) { return BitInsertOp(nil, nil, "b", 1, []byte{0xff}) },
			[]byte{0x93, 0x01, 0x01, 0xa2, 0x04, 0xff, 0x00},
			OpTypeBitModify,
		},
		{
			"remove",
			func() (*Operation, error) { return BitRemoveOp(nil, noFail, "b", 1, 2) },
			[]byte{0x93, 0x02, 0x01, 0x02, 0x04},
			OpTypeBitModify,
		},
		{
			"set",
			func() (*Operation, error) { return BitSetOp(nil, nil, "b", 0, 8, []byte{0xff}) },
			[]byte{0x94, 0x03, 0x00, 0x08, 0xa2, 0x04, 0xff, 0x00},
			OpTypeBitModify,
		},
		{
			"or",
			func() (*Operation, error) { return BitOrOp(nil, nil, "b", 0, 8, []byte{0x0f}) },
			[]byte{0x94, 0x04, 0x00, 0x08, 0xa2, 0x04, 0x0f, 0x00},
			OpTypeBitModify,
		},
		{
			"not",
			func() (*Operation, error) { return BitNotOp(nil, nil, "b", 0, 8) },
			[]byte{0x93, 0x07, 0x00, 0x08, 0x00},
			OpTypeBitModify,
		},
		{
			"lshift",
			func() (*Operation, error) { return BitLShiftOp(nil, nil, "b", 0, 8, 3) },
			[]byte{0x94, 0x08, 0x00, 0x08, 0x03, 0x00},
			OpTypeBitModify,
		},
		{
			"add signed wrap",
			func() (*Operation, error) {
				return BitAddOp(nil, nil, "b", 0, 8, 1, true, BitOverflowActionWrap)
			},
			[]byte{0x96, 0x0a, 0x00, 0x08, 0x01, 0x00, 0x05},
			OpTypeBitModify,
		},
		{
			"subtract unsigned saturate",
			func() (*Operation, error) {
				return BitSubtractOp(nil, nil, "b", 0, 8, 1, false, BitOverflowActionSaturate)
			},
			[]byte{0x96, 0x0b, 0x00, 0x08, 0x01, 0x00, 0x02},
			OpTypeBitModify,
		},
		{
			"set int",
			func() (*Operation, error) { return BitSetIntOp(nil, nil, "b", 0, 8, 42) },
			[]byte{0x95, 0x0c, 0x00, 0x08, 0x2a, 0x00},
			OpTypeBitModify,
		},
		{
			"get",
			func() (*Operation, error) { return BitGetOp(nil, "b", 8, 16) },
			[]byte{0x93, 0x32, 0x08, 0x10},
			OpTypeBitRead,
		},
		{
			"count",
			func() (*Operation, error) { return BitCountOp(nil, "b", 0, 64) },
			[]byte{0x93, 0x33, 0x00, 0x40},
			OpTypeBitRead,
		},
		{
			"lscan",
			func() (*Operation, error) { return BitLScanOp(nil, "b", 0, 8, true) },
			[]byte{0x94, 0x34, 0x00, 0x08, 0x01},
			OpTypeBitRead,
		},
		{
			"rscan",
			func() (*Operation, error) { return BitRScanOp(nil, "b", 0, 8, false) },
			[]byte{0x94, 0x35, 0x00, 0x08, 0x00},
			OpTypeBitRead,
		},
		{
			"get int signed",
			func() (*Operation, error) { return BitGetIntOp(nil, "b", 0, 32, true) },
			[]byte{0x94, 0x36, 0x00, 0x20, 0x01},
			OpTypeBitRead,
		},
		{
			"get int unsigned omits flag",
			func() (*Operation, error) { return BitGetIntOp(nil, "b", 0, 32, false) },
			[]byte{0x93, 0x36, 0x00, 0x20},
			OpTypeBitRead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := tt.build()
			got := binPayload(t, op, err)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("payload = % x, want % x", got, tt.want)
			}
			if op.OpType != tt.opType {
				t.Errorf("OpType = %d, want %d", op.OpType, tt.opType)
			}
		})
	}
}

func TestArithmeticFlags(t *testing.T) {
	tests := []struct {
		name   string
		signed bool
		action BitOverflowAction
		want   int
	}{
		{"unsigned fail", false, BitOverflowActionFail, 0},
		{"signed fail", true, BitOverflowActionFail, 1},
		{"unsigned saturate", false, BitOverflowActionSaturate, 2},
		{"signed wrap", true, BitOverflowActionWrap, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := arithmeticFlags(tt.signed, tt.action); got != tt.want {
				t.Errorf("arithmeticFlags(%t, %d) = %d, want %d", tt.signed, tt.action, got, tt.want)
			}
		})
	}
}
