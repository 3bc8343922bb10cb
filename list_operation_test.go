package aswire

import (
	"bytes"
	"errors"
	"testing"
)

// -----------------------------------------------------------------------------
// Builder byte vector tests
// -----------------------------------------------------------------------------

func TestListOperationVectors(t *testing.T) {
	ordered := &ListPolicy{Order: ListOrderOrdered, Flags: ListWriteFlagsAddUnique}

	tests := []struct {
		name    string
		build   func() (*Operation, error)
		want    []byte
		opType  OperationType
	}{
		{
			"create",
			func() (*Operation, error) { return ListCreateOp(nil, "l", ListOrderOrdered, false) },
			[]byte{0x92, 0x00, 0x01},
			OpTypeCDTModify,
		},
		{
			"set order",
			func() (*Operation, error) { return ListSetOrderOp(nil, "l", ListOrderOrdered) },
			[]byte{0x92, 0x00, 0x01},
			OpTypeCDTModify,
		},
		{
			"append",
			func() (*Operation, error) { return ListAppendOp(nil, "l", NewValue(5)) },
			[]byte{0x92, 0x01, 0x05},
			OpTypeCDTModify,
		},
		{
			"append with policy",
			func() (*Operation, error) { return ListAppendWithPolicyOp(nil, ordered, "l", NewValue(5)) },
			[]byte{0x94, 0x01, 0x05, 0x01, 0x01},
			OpTypeCDTModify,
		},
		{
			"append items",
			func() (*Operation, error) {
				return ListAppendItemsOp(nil, "l", []Value{NewValue(1), NewValue(2)})
			},
			[]byte{0x92, 0x02, 0x92, 0x01, 0x02},
			OpTypeCDTModify,
		},
		{
			"insert",
			func() (*Operation, error) { return ListInsertOp(nil, "l", 2, NewValue("x")) },
			[]byte{0x93, 0x03, 0x02, 0xa2, 0x03, 'x'},
			OpTypeCDTModify,
		},
		{
			"insert with policy sends flags only",
			func() (*Operation, error) { return ListInsertWithPolicyOp(nil, ordered, "l", 2, NewValue("x")) },
			[]byte{0x94, 0x03, 0x02, 0xa2, 0x03, 'x', 0x01},
			OpTypeCDTModify,
		},
		{
			"pop",
			func() (*Operation, error) { return ListPopOp(nil, "l", 0) },
			[]byte{0x92, 0x05, 0x00},
			OpTypeCDTModify,
		},
		{
			"remove range",
			func() (*Operation, error) { return ListRemoveRangeOp(nil, "l", 1, 2) },
			[]byte{0x93, 0x08, 0x01, 0x02},
			OpTypeCDTModify,
		},
		{
			"remove range from",
			func() (*Operation, error) { return ListRemoveRangeFromOp(nil, "l", 1) },
			[]byte{0x92, 0x08, 0x01},
			OpTypeCDTModify,
		},
		{
			"set",
			func() (*Operation, error) { return ListSetOp(nil, "l", 1, NewValue(7)) },
			[]byte{0x93, 0x09, 0x01, 0x07},
			OpTypeCDTModify,
		},
		{
			"trim",
			func() (*Operation, error) { return ListTrimOp(nil, "l", 1, 2) },
			[]byte{0x93, 0x0a, 0x01, 0x02},
			OpTypeCDTModify,
		},
		{
			"clear",
			func() (*Operation, error) { return ListClearOp(nil, "l") },
			[]byte{0x91, 0x0b},
			OpTypeCDTModify,
		},
		{
			"increment by",
			func() (*Operation, error) { return ListIncrementByOp(nil, "l", 3, NewValue(2)) },
			[]byte{0x93, 0x0c, 0x03, 0x02},
			OpTypeCDTModify,
		},
		{
			"sort",
			func() (*Operation, error) { return ListSortOp(nil, "l", ListSortFlagsDropDuplicates) },
			[]byte{0x92, 0x0d, 0x02},
			OpTypeCDTModify,
		},
		{
			"size",
			func() (*Operation, error) { return ListSizeOp(nil, "l") },
			[]byte{0x91, 0x10},
			OpTypeCDTRead,
		},
		{
			"get",
			func() (*Operation, error) { return ListGetOp(nil, "l", 4) },
			[]byte{0x92, 0x11, 0x04},
			OpTypeCDTRead,
		},
		{
			"get by index",
			func() (*Operation, error) { return ListGetByIndexOp(nil, "l", 3, ListReturnTypeValue) },
			[]byte{0x93, 0x13, 0x07, 0x03},
			OpTypeCDTRead,
		},
		{
			"get by rank",
			func() (*Operation, error) { return ListGetByRankOp(nil, "l", -1, ListReturnTypeCount) },
			[]byte{0x93, 0x15, 0x05, 0xff},
			OpTypeCDTRead,
		},
		{
			"get by value",
			func() (*Operation, error) { return ListGetByValueOp(nil, "l", NewValue(9), ListReturnTypeValue) },
			[]byte{0x93, 0x16, 0x07, 0x09},
			OpTypeCDTRead,
		},
		{
			"get by value list",
			func() (*Operation, error) {
				return ListGetByValueListOp(nil, "l", []Value{NewValue(1), NewValue(2)}, ListReturnTypeCount)
			},
			[]byte{0x93, 0x17, 0x05, 0x92, 0x01, 0x02},
			OpTypeCDTRead,
		},
		{
			"get by value range both bounds",
			func() (*Operation, error) {
				return ListGetByValueRangeOp(nil, "l", NewValue(5), NewValue(10), ListReturnTypeValue)
			},
			[]byte{0x94, 0x19, 0x07, 0x05, 0x0a},
			OpTypeCDTRead,
		},
		{
			"get by value range open end",
			func() (*Operation, error) {
				return ListGetByValueRangeOp(nil, "l", NewValue(5), nil, ListReturnTypeValue)
			},
			[]byte{0x93, 0x19, 0x07, 0x05},
			OpTypeCDTRead,
		},
		{
			"get by value relative rank",
			func() (*Operation, error) {
				return ListGetByValueRelativeRankRangeOp(nil, "l", NewValue(5), 1, ListReturnTypeValue)
			},
			[]byte{0x94, 0x1b, 0x07, 0x05, 0x01},
			OpTypeCDTRead,
		},
		{
			"remove by index",
			func() (*Operation, error) { return ListRemoveByIndexOp(nil, "l", 0, ListReturnTypeNone) },
			[]byte{0x93, 0x20, 0x00, 0x00},
			OpTypeCDTModify,
		},
		{
			"remove by value",
			func() (*Operation, error) { return ListRemoveByValueOp(nil, "l", NewValue(5), ListReturnTypeCount) },
			[]byte{0x93, 0x23, 0x05, 0x05},
			OpTypeCDTModify,
		},
		{
			"remove by rank range count",
			func() (*Operation, error) {
				return ListRemoveByRankRangeCountOp(nil, "l", 0, 3, ListReturnTypeNone)
			},
			[]byte{0x94, 0x27, 0x00, 0x00, 0x03},
			OpTypeCDTModify,
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

// The inverted modifier travels to the server unmodified.
func TestListReturnTypeInvertedOnWire(t *testing.T) {
	op, err := ListGetByValueOp(nil, "l", NewValue(5), ListReturnTypeValue|ListReturnTypeInverted)
	got := binPayload(t, op, err)
	want := []byte{0x93, 0x16, 0xce, 0x00, 0x01, 0x00, 0x07, 0x05}
	if !bytes.Equal(got, want) {
		t.Errorf("payload = % x, want % x", got, want)
	}
}

// -----------------------------------------------------------------------------
// Return type mapping tests
// -----------------------------------------------------------------------------

func TestListReturnTypeValueType(t *testing.T) {
	tests := []struct {
		name string
		rt   ListReturnType
		want ExpType
		ok   bool
	}{
		{"index", ListReturnTypeIndex, ExpTypeList, true},
		{"reverse rank", ListReturnTypeReverseRank, ExpTypeList, true},
		{"count", ListReturnTypeCount, ExpTypeInt, true},
		{"value", ListReturnTypeValue, ExpTypeList, true},
		{"exists", ListReturnTypeExists, ExpTypeBool, true},
		{"value inverted", ListReturnTypeValue | ListReturnTypeInverted, ExpTypeList, true},
		{"none", ListReturnTypeNone, 0, false},
		{"inverted alone", ListReturnTypeInverted, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rt.ValueType()
			if tt.ok {
				if err != nil {
					t.Fatalf("ValueType error: %v", err)
				}
				if got != tt.want {
					t.Errorf("ValueType = %v, want %v", got, tt.want)
				}
				return
			}
			var e *Error
			if !errors.As(err, &e) || e.ResultCode != ResultParameterError {
				t.Errorf("error = %v, want parameter error", err)
			}
		})
	}
}
