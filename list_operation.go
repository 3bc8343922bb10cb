// list_operation.go implements the list CDT operation builders.
//
// Each builder packs one wire-level sub-operation and wraps it in an
// Operation envelope. Every builder accepts an optional context path
// addressing a nested list anywhere inside the bin.
//
// Reference: Aerospike list CDT command set.
package aswire

// List CDT opcodes.
const (
	cdtListSetType               = 0
	cdtListAppend                = 1
	cdtListAppendItems           = 2
	cdtListInsert                = 3
	cdtListInsertItems           = 4
	cdtListPop                   = 5
	cdtListPopRange              = 6
	cdtListRemove                = 7
	cdtListRemoveRange           = 8
	cdtListSet                   = 9
	cdtListTrim                  = 10
	cdtListClear                 = 11
	cdtListIncrement             = 12
	cdtListSort                  = 13
	cdtListSize                  = 16
	cdtListGet                   = 17
	cdtListGetRange              = 18
	cdtListGetByIndex            = 19
	cdtListGetByRank             = 21
	cdtListGetByValue            = 22
	cdtListGetByValueList        = 23
	cdtListGetByIndexRange       = 24
	cdtListGetByValueInterval    = 25
	cdtListGetByRankRange        = 26
	cdtListGetByValueRelRank     = 27
	cdtListRemoveByIndex         = 32
	cdtListRemoveByRank          = 34
	cdtListRemoveByValue         = 35
	cdtListRemoveByValueList     = 36
	cdtListRemoveByIndexRange    = 37
	cdtListRemoveByValueInterval = 38
	cdtListRemoveByRankRange     = 39
	cdtListRemoveByValueRelRank  = 40
)

// ListOrder selects list storage order.
type ListOrder int

const (
	// ListOrderUnordered stores items in insertion order.
	ListOrderUnordered ListOrder = 0

	// ListOrderOrdered keeps items sorted by value.
	ListOrderOrdered ListOrder = 1
)

// ListWriteFlags modify list write behavior. Flags combine with OR.
type ListWriteFlags int

const (
	// ListWriteFlagsDefault allows duplicates and fails on out-of-bounds.
	ListWriteFlagsDefault ListWriteFlags = 0

	// ListWriteFlagsAddUnique rejects values that already exist.
	ListWriteFlagsAddUnique ListWriteFlags = 1

	// ListWriteFlagsInsertBounded rejects inserts past the list end.
	ListWriteFlagsInsertBounded ListWriteFlags = 2

	// ListWriteFlagsNoFail turns policy violations into no-ops.
	ListWriteFlagsNoFail ListWriteFlags = 4

	// ListWriteFlagsPartial allows the valid subset of a multi-item write.
	ListWriteFlagsPartial ListWriteFlags = 8
)

// ListSortFlags modify list sort behavior.
type ListSortFlags int

const (
	// ListSortFlagsDefault sorts ascending, keeping duplicates.
	ListSortFlagsDefault ListSortFlags = 0

	// ListSortFlagsDescending sorts descending.
	ListSortFlagsDescending ListSortFlags = 1

	// ListSortFlagsDropDuplicates removes duplicate values.
	ListSortFlagsDropDuplicates ListSortFlags = 2
)

// ListReturnType selects what a list read/remove operation reports back.
type ListReturnType int

const (
	// ListReturnTypeNone returns nothing.
	ListReturnTypeNone ListReturnType = 0

	// ListReturnTypeIndex returns insertion-order indices.
	ListReturnTypeIndex ListReturnType = 1

	// ListReturnTypeReverseIndex returns indices from the end.
	ListReturnTypeReverseIndex ListReturnType = 2

	// ListReturnTypeRank returns value-order ranks.
	ListReturnTypeRank ListReturnType = 3

	// ListReturnTypeReverseRank returns ranks from the largest value.
	ListReturnTypeReverseRank ListReturnType = 4

	// ListReturnTypeCount returns the number of matches.
	ListReturnTypeCount ListReturnType = 5

	// ListReturnTypeValue returns the matched values.
	ListReturnTypeValue ListReturnType = 7

	// ListReturnTypeExists returns whether anything matched.
	ListReturnTypeExists ListReturnType = 13

	// ListReturnTypeInverted flips a range selection to everything outside
	// it. It is a modifier OR'd onto a base return type, never used alone,
	// and travels to the server unmodified.
	ListReturnTypeInverted ListReturnType = 0x10000
)

// ValueType returns the expression value type a read with this return type
// produces. The inverted modifier is masked off first; it changes which
// elements match, not the shape of the result.
func (rt ListReturnType) ValueType() (ExpType, error) {
	switch rt &^ ListReturnTypeInverted {
	case ListReturnTypeIndex, ListReturnTypeReverseIndex,
		ListReturnTypeRank, ListReturnTypeReverseRank:
		return ExpTypeList, nil
	case ListReturnTypeCount:
		return ExpTypeInt, nil
	case ListReturnTypeValue:
		return ExpTypeList, nil
	case ListReturnTypeExists:
		return ExpTypeBool, nil
	default:
		return 0, newErrorf(ResultParameterError, "invalid list return type %d", int(rt))
	}
}

// ListPolicy carries list write attributes.
type ListPolicy struct {
	// Order is the storage order applied on create.
	Order ListOrder

	// Flags are the write flags.
	Flags ListWriteFlags
}

// DefaultListPolicy returns an unordered, default-flags policy.
func DefaultListPolicy() *ListPolicy {
	return &ListPolicy{}
}

// ListCreateOp creates a list bin (or nested list, with a context) with the
// given order. pad requests nil-padding for unordered lists addressed by
// index. The create-order flag lands on the last context step only.
func ListCreateOp(cfg *Config, binName string, order ListOrder, pad bool, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListSetType, ctx,
		listOrderFlag(order, pad), int(order))
}

// ListSetOrderOp changes a list's storage order.
func ListSetOrderOp(cfg *Config, binName string, order ListOrder, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListSetType, ctx, 0, int(order))
}

// ListAppendOp appends a value to the list.
func ListAppendOp(cfg *Config, binName string, value Value, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListAppend, ctx, 0, value)
}

// ListAppendWithPolicyOp appends a value under a list policy.
func ListAppendWithPolicyOp(cfg *Config, policy *ListPolicy, binName string, value Value, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListAppend, ctx, 0,
		value, int(policy.Order), int(policy.Flags))
}

// ListAppendItemsOp appends multiple values to the list.
func ListAppendItemsOp(cfg *Config, binName string, values []Value, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListAppendItems, ctx, 0, ValueArray(values))
}

// ListAppendItemsWithPolicyOp appends multiple values under a list policy.
func ListAppendItemsWithPolicyOp(cfg *Config, policy *ListPolicy, binName string, values []Value, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListAppendItems, ctx, 0,
		ValueArray(values), int(policy.Order), int(policy.Flags))
}

// ListInsertOp inserts a value at index.
func ListInsertOp(cfg *Config, binName string, index int, value Value, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListInsert, ctx, 0, index, value)
}

// ListInsertWithPolicyOp inserts a value at index under a list policy.
// Insert has no order attribute; only the write flags travel.
func ListInsertWithPolicyOp(cfg *Config, policy *ListPolicy, binName string, index int, value Value, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListInsert, ctx, 0,
		index, value, int(policy.Flags))
}

// ListInsertItemsOp inserts multiple values at index.
func ListInsertItemsOp(cfg *Config, binName string, index int, values []Value, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListInsertItems, ctx, 0, index, ValueArray(values))
}

// ListInsertItemsWithPolicyOp inserts multiple values under a list policy.
func ListInsertItemsWithPolicyOp(cfg *Config, policy *ListPolicy, binName string, index int, values []Value, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListInsertItems, ctx, 0,
		index, ValueArray(values), int(policy.Flags))
}

// ListPopOp removes and returns the value at index.
func ListPopOp(cfg *Config, binName string, index int, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListPop, ctx, 0, index)
}

// ListPopRangeOp removes and returns count values starting at index.
func ListPopRangeOp(cfg *Config, binName string, index, count int, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListPopRange, ctx, 0, index, count)
}

// ListPopRangeFromOp removes and returns all values from index to the end.
func ListPopRangeFromOp(cfg *Config, binName string, index int, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListPopRange, ctx, 0, index)
}

// ListRemoveOp removes the value at index.
func ListRemoveOp(cfg *Config, binName string, index int, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListRemove, ctx, 0, index)
}

// ListRemoveRangeOp removes count values starting at index.
func ListRemoveRangeOp(cfg *Config, binName string, index, count int, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListRemoveRange, ctx, 0, index, count)
}

// ListRemoveRangeFromOp removes all values from index to the end.
func ListRemoveRangeFromOp(cfg *Config, binName string, index int, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListRemoveRange, ctx, 0, index)
}

// ListSetOp replaces the value at index.
func ListSetOp(cfg *Config, binName string, index int, value Value, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListSet, ctx, 0, index, value)
}

// ListSetWithPolicyOp replaces the value at index under a list policy.
func ListSetWithPolicyOp(cfg *Config, policy *ListPolicy, binName string, index int, value Value, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListSet, ctx, 0,
		index, value, int(policy.Flags))
}

// ListTrimOp removes everything outside the window [index, index+count).
func ListTrimOp(cfg *Config, binName string, index, count int, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListTrim, ctx, 0, index, count)
}

// ListClearOp removes all values.
func ListClearOp(cfg *Config, binName string, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListClear, ctx, 0)
}

// ListIncrementOp increments the value at index by one.
func ListIncrementOp(cfg *Config, binName string, index int, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListIncrement, ctx, 0, index)
}

// ListIncrementByOp increments the value at index by delta.
func ListIncrementByOp(cfg *Config, binName string, index int, delta Value, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListIncrement, ctx, 0, index, delta)
}

// ListIncrementWithPolicyOp increments the value at index by delta under a
// list policy.
func ListIncrementWithPolicyOp(cfg *Config, policy *ListPolicy, binName string, index int, delta Value, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListIncrement, ctx, 0,
		index, delta, int(policy.Order), int(policy.Flags))
}

// ListSortOp sorts the list.
func ListSortOp(cfg *Config, binName string, flags ListSortFlags, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListSort, ctx, 0, int(flags))
}

// ListSizeOp returns the number of values.
func ListSizeOp(cfg *Config, binName string, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtListSize, ctx, 0)
}

// ListGetOp returns the value at index.
func ListGetOp(cfg *Config, binName string, index int, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtListGet, ctx, 0, index)
}

// ListGetRangeOp returns count values starting at index.
func ListGetRangeOp(cfg *Config, binName string, index, count int, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtListGetRange, ctx, 0, index, count)
}

// ListGetRangeFromOp returns all values from index to the end.
func ListGetRangeFromOp(cfg *Config, binName string, index int, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtListGetRange, ctx, 0, index)
}

// ListGetByIndexOp selects the value at index.
func ListGetByIndexOp(cfg *Config, binName string, index int, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtListGetByIndex, ctx, 0, int(returnType), index)
}

// ListGetByIndexRangeOp selects all values from index to the end.
func ListGetByIndexRangeOp(cfg *Config, binName string, index int, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtListGetByIndexRange, ctx, 0, int(returnType), index)
}

// ListGetByIndexRangeCountOp selects count values starting at index.
func ListGetByIndexRangeCountOp(cfg *Config, binName string, index, count int, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtListGetByIndexRange, ctx, 0, int(returnType), index, count)
}

// ListGetByRankOp selects the value with the given rank.
func ListGetByRankOp(cfg *Config, binName string, rank int, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtListGetByRank, ctx, 0, int(returnType), rank)
}

// ListGetByRankRangeOp selects all values from rank to the highest rank.
func ListGetByRankRangeOp(cfg *Config, binName string, rank int, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtListGetByRankRange, ctx, 0, int(returnType), rank)
}

// ListGetByRankRangeCountOp selects count values starting at rank.
func ListGetByRankRangeCountOp(cfg *Config, binName string, rank, count int, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtListGetByRankRange, ctx, 0, int(returnType), rank, count)
}

// ListGetByValueOp selects values equal to value.
func ListGetByValueOp(cfg *Config, binName string, value Value, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtListGetByValue, ctx, 0, int(returnType), value)
}

// ListGetByValueListOp selects values equal to any of the given values.
func ListGetByValueListOp(cfg *Config, binName string, values []Value, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtListGetByValueList, ctx, 0, int(returnType), ValueArray(values))
}

// ListGetByValueRangeOp selects values in [begin, end). A nil bound is open;
// inverting the return type selects everything outside the range instead.
func ListGetByValueRangeOp(cfg *Config, binName string, begin, end Value, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtListGetByValueInterval, ctx, 0,
		rangeOperands(int(returnType), begin, end)...)
}

// ListGetByValueRelativeRankRangeOp selects values starting at the given
// rank relative to value, to the end.
func ListGetByValueRelativeRankRangeOp(cfg *Config, binName string, value Value, rank int, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtListGetByValueRelRank, ctx, 0, int(returnType), value, rank)
}

// ListGetByValueRelativeRankRangeCountOp selects count values starting at
// the given rank relative to value.
func ListGetByValueRelativeRankRangeCountOp(cfg *Config, binName string, value Value, rank, count int, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtListGetByValueRelRank, ctx, 0, int(returnType), value, rank, count)
}

// ListRemoveByIndexOp removes the value at index.
func ListRemoveByIndexOp(cfg *Config, binName string, index int, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListRemoveByIndex, ctx, 0, int(returnType), index)
}

// ListRemoveByIndexRangeOp removes all values from index to the end.
func ListRemoveByIndexRangeOp(cfg *Config, binName string, index int, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListRemoveByIndexRange, ctx, 0, int(returnType), index)
}

// ListRemoveByIndexRangeCountOp removes count values starting at index.
func ListRemoveByIndexRangeCountOp(cfg *Config, binName string, index, count int, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListRemoveByIndexRange, ctx, 0, int(returnType), index, count)
}

// ListRemoveByRankOp removes the value with the given rank.
func ListRemoveByRankOp(cfg *Config, binName string, rank int, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListRemoveByRank, ctx, 0, int(returnType), rank)
}

// ListRemoveByRankRangeOp removes all values from rank to the highest rank.
func ListRemoveByRankRangeOp(cfg *Config, binName string, rank int, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListRemoveByRankRange, ctx, 0, int(returnType), rank)
}

// ListRemoveByRankRangeCountOp removes count values starting at rank.
func ListRemoveByRankRangeCountOp(cfg *Config, binName string, rank, count int, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListRemoveByRankRange, ctx, 0, int(returnType), rank, count)
}

// ListRemoveByValueOp removes values equal to value.
func ListRemoveByValueOp(cfg *Config, binName string, value Value, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListRemoveByValue, ctx, 0, int(returnType), value)
}

// ListRemoveByValueListOp removes values equal to any of the given values.
func ListRemoveByValueListOp(cfg *Config, binName string, values []Value, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListRemoveByValueList, ctx, 0, int(returnType), ValueArray(values))
}

// ListRemoveByValueRangeOp removes values in [begin, end). A nil bound is
// open; inverting the return type removes everything outside the range.
func ListRemoveByValueRangeOp(cfg *Config, binName string, begin, end Value, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListRemoveByValueInterval, ctx, 0,
		rangeOperands(int(returnType), begin, end)...)
}

// ListRemoveByValueRelativeRankRangeOp removes values starting at the given
// rank relative to value, to the end.
func ListRemoveByValueRelativeRankRangeOp(cfg *Config, binName string, value Value, rank int, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListRemoveByValueRelRank, ctx, 0, int(returnType), value, rank)
}

// ListRemoveByValueRelativeRankRangeCountOp removes count values starting at
// the given rank relative to value.
func ListRemoveByValueRelativeRankRangeCountOp(cfg *Config, binName string, value Value, rank, count int, returnType ListReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtListRemoveByValueRelRank, ctx, 0, int(returnType), value, rank, count)
}
