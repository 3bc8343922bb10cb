// map_operation.go implements the map CDT operation builders.
//
// Map writes are governed by a MapPolicy. The modern form carries write
// flags packed as a trailing operand; the legacy form selects a different
// opcode per write mode instead. Replace-mode writes never send the order
// attribute, since a replace must not create the map.
//
// Reference: Aerospike map CDT command set.
package aswire

// Map CDT opcodes.
const (
	cdtMapSetType                = 64
	cdtMapAdd                    = 65
	cdtMapAddItems               = 66
	cdtMapPut                    = 67
	cdtMapPutItems               = 68
	cdtMapReplace                = 69
	cdtMapReplaceItems           = 70
	cdtMapIncrement              = 73
	cdtMapDecrement              = 74
	cdtMapClear                  = 75
	cdtMapRemoveByKey            = 76
	cdtMapRemoveByIndex          = 77
	cdtMapRemoveByRank           = 79
	cdtMapRemoveByKeyList        = 81
	cdtMapRemoveByValue          = 82
	cdtMapRemoveByValueList      = 83
	cdtMapRemoveByKeyInterval    = 84
	cdtMapRemoveByIndexRange     = 85
	cdtMapRemoveByValueInterval  = 86
	cdtMapRemoveByRankRange      = 87
	cdtMapRemoveByKeyRelIndex    = 88
	cdtMapRemoveByValueRelRank   = 89
	cdtMapSize                   = 96
	cdtMapGetByKey               = 97
	cdtMapGetByIndex             = 98
	cdtMapGetByRank              = 100
	cdtMapGetByValue             = 102
	cdtMapGetByKeyInterval       = 103
	cdtMapGetByIndexRange        = 104
	cdtMapGetByValueInterval     = 105
	cdtMapGetByRankRange         = 106
	cdtMapGetByKeyList           = 107
	cdtMapGetByValueList         = 108
	cdtMapGetByKeyRelIndexRange  = 109
	cdtMapGetByValueRelRankRange = 110
)

// MapOrder selects map storage order. The constant doubles as the
// attributes operand sent with creating writes.
type MapOrder int

const (
	// MapOrderUnordered stores entries in no particular order.
	MapOrderUnordered MapOrder = 0

	// MapOrderKeyOrdered keeps entries sorted by key.
	MapOrderKeyOrdered MapOrder = 1

	// MapOrderKeyValueOrdered keeps entries sorted by key, then value.
	MapOrderKeyValueOrdered MapOrder = 3
)

// MapWriteMode is the legacy write-mode policy. Each mode maps to a
// distinct opcode pair rather than a flags operand; it predates
// MapWriteFlags and cannot be combined with them.
type MapWriteMode int

const (
	// MapWriteModeUpdate creates or updates entries.
	MapWriteModeUpdate MapWriteMode = iota

	// MapWriteModeUpdateOnly updates existing entries and fails on new keys.
	MapWriteModeUpdateOnly

	// MapWriteModeCreateOnly creates new entries and fails on existing keys.
	MapWriteModeCreateOnly
)

// MapWriteFlags modify map write behavior. Flags combine with OR.
type MapWriteFlags int

const (
	// MapWriteFlagsDefault creates or updates entries.
	MapWriteFlagsDefault MapWriteFlags = 0

	// MapWriteFlagsCreateOnly fails when the key already exists.
	MapWriteFlagsCreateOnly MapWriteFlags = 1

	// MapWriteFlagsUpdateOnly fails when the key does not exist.
	MapWriteFlagsUpdateOnly MapWriteFlags = 2

	// MapWriteFlagsNoFail turns policy violations into no-ops.
	MapWriteFlagsNoFail MapWriteFlags = 4

	// MapWriteFlagsPartial allows the valid subset of a multi-item write.
	MapWriteFlagsPartial MapWriteFlags = 8
)

// MapReturnType selects what a map read/remove operation reports back.
type MapReturnType int

const (
	// MapReturnTypeNone returns nothing.
	MapReturnTypeNone MapReturnType = 0

	// MapReturnTypeIndex returns key-order indices.
	MapReturnTypeIndex MapReturnType = 1

	// MapReturnTypeReverseIndex returns indices from the last key.
	MapReturnTypeReverseIndex MapReturnType = 2

	// MapReturnTypeRank returns value-order ranks.
	MapReturnTypeRank MapReturnType = 3

	// MapReturnTypeReverseRank returns ranks from the largest value.
	MapReturnTypeReverseRank MapReturnType = 4

	// MapReturnTypeCount returns the number of matches.
	MapReturnTypeCount MapReturnType = 5

	// MapReturnTypeKey returns the matched keys.
	MapReturnTypeKey MapReturnType = 6

	// MapReturnTypeValue returns the matched values.
	MapReturnTypeValue MapReturnType = 7

	// MapReturnTypeKeyValue returns matched key/value pairs.
	MapReturnTypeKeyValue MapReturnType = 8

	// MapReturnTypeExists returns whether anything matched.
	MapReturnTypeExists MapReturnType = 13

	// MapReturnTypeUnorderedMap returns matches as an unordered map.
	MapReturnTypeUnorderedMap MapReturnType = 16

	// MapReturnTypeOrderedMap returns matches as a key-ordered map.
	MapReturnTypeOrderedMap MapReturnType = 17

	// MapReturnTypeInverted flips a range selection to everything outside
	// it. It is a modifier OR'd onto a base return type, never used alone,
	// and travels to the server unmodified.
	MapReturnTypeInverted MapReturnType = 0x10000
)

// ValueType returns the expression value type a read with this return type
// produces. The inverted modifier is masked off before the lookup. Base
// types with no result shape, including MapReturnTypeNone, are an error.
// Combinations of two base types pass through unvalidated; the mask-then-
// switch sees only whatever single value the OR produced.
func (rt MapReturnType) ValueType() (ExpType, error) {
	switch rt &^ MapReturnTypeInverted {
	case MapReturnTypeIndex, MapReturnTypeReverseIndex,
		MapReturnTypeRank, MapReturnTypeReverseRank:
		return ExpTypeList, nil
	case MapReturnTypeCount:
		return ExpTypeInt, nil
	case MapReturnTypeKey, MapReturnTypeValue:
		return ExpTypeList, nil
	case MapReturnTypeKeyValue, MapReturnTypeOrderedMap, MapReturnTypeUnorderedMap:
		return ExpTypeMap, nil
	case MapReturnTypeExists:
		return ExpTypeBool, nil
	default:
		return 0, newErrorf(ResultParameterError, "invalid map return type %d", int(rt))
	}
}

// MapPolicy carries map write attributes. A zero policy is unordered with
// default flags and update write mode.
type MapPolicy struct {
	// Order is the storage order applied on create.
	Order MapOrder

	// WriteMode is the legacy write-mode policy. It is consulted only
	// when Flags is zero.
	WriteMode MapWriteMode

	// Flags are the modern write flags. Non-zero flags take precedence
	// over WriteMode.
	Flags MapWriteFlags

	// PersistIndex asks the server to persist the map index.
	PersistIndex bool
}

// DefaultMapPolicy returns an unordered update policy with default flags.
func DefaultMapPolicy() *MapPolicy {
	return &MapPolicy{}
}

// itemCommands returns the single-entry and multi-entry opcodes the legacy
// write mode maps to, and whether the mode sends the order attribute.
func (p *MapPolicy) itemCommands() (single, multi int, withAttr bool) {
	switch p.WriteMode {
	case MapWriteModeUpdateOnly:
		return cdtMapReplace, cdtMapReplaceItems, false
	case MapWriteModeCreateOnly:
		return cdtMapAdd, cdtMapAddItems, true
	default:
		return cdtMapPut, cdtMapPutItems, true
	}
}

// MapCreateOp creates a map bin (or nested map, with a context) with the
// given order. The create-order flag lands on the last context step only.
func MapCreateOp(cfg *Config, binName string, order MapOrder, persistIndex bool, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapSetType, ctx,
		mapOrderFlag(order, persistIndex), int(order))
}

// MapSetPolicyOp changes a map's storage order.
func MapSetPolicyOp(cfg *Config, policy *MapPolicy, binName string, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapSetType, ctx, 0, int(policy.Order))
}

// MapPutOp writes one key/value entry under the policy. With non-zero
// write flags the flags travel as a fifth operand; with the legacy
// update-only mode the replace opcode is used and the order attribute is
// omitted, since a replace must never create the map.
func MapPutOp(cfg *Config, policy *MapPolicy, binName string, key, value Value, ctx ...*CDTContext) (*Operation, error) {
	if policy == nil {
		policy = DefaultMapPolicy()
	}
	if policy.Flags != MapWriteFlagsDefault {
		return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapPut, ctx, 0,
			key, value, int(policy.Order), int(policy.Flags))
	}
	single, _, withAttr := policy.itemCommands()
	if !withAttr {
		return newCDTOperation(cfg, OpTypeCDTModify, binName, single, ctx, 0, key, value)
	}
	return newCDTOperation(cfg, OpTypeCDTModify, binName, single, ctx, 0,
		key, value, int(policy.Order))
}

// MapPutItemsOp writes multiple entries under the policy. Entry order is
// preserved on the wire; the server reorders per the map's storage order.
func MapPutItemsOp(cfg *Config, policy *MapPolicy, binName string, items []MapPair, ctx ...*CDTContext) (*Operation, error) {
	if policy == nil {
		policy = DefaultMapPolicy()
	}
	packed := &OrderedMap{Pairs: items}
	if policy.Flags != MapWriteFlagsDefault {
		return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapPutItems, ctx, 0,
			packed, int(policy.Order), int(policy.Flags))
	}
	_, multi, withAttr := policy.itemCommands()
	if !withAttr {
		return newCDTOperation(cfg, OpTypeCDTModify, binName, multi, ctx, 0, packed)
	}
	return newCDTOperation(cfg, OpTypeCDTModify, binName, multi, ctx, 0,
		packed, int(policy.Order))
}

// MapIncrementOp increments the value at key by delta.
func MapIncrementOp(cfg *Config, policy *MapPolicy, binName string, key, delta Value, ctx ...*CDTContext) (*Operation, error) {
	if policy == nil {
		policy = DefaultMapPolicy()
	}
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapIncrement, ctx, 0,
		key, delta, int(policy.Order))
}

// MapDecrementOp decrements the value at key by delta.
func MapDecrementOp(cfg *Config, policy *MapPolicy, binName string, key, delta Value, ctx ...*CDTContext) (*Operation, error) {
	if policy == nil {
		policy = DefaultMapPolicy()
	}
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapDecrement, ctx, 0,
		key, delta, int(policy.Order))
}

// MapClearOp removes all entries.
func MapClearOp(cfg *Config, binName string, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapClear, ctx, 0)
}

// MapSizeOp returns the number of entries.
func MapSizeOp(cfg *Config, binName string, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtMapSize, ctx, 0)
}

// MapGetByKeyOp selects the entry with the given key.
func MapGetByKeyOp(cfg *Config, binName string, key Value, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtMapGetByKey, ctx, 0, int(returnType), key)
}

// MapGetByKeyListOp selects entries whose key matches any of keys.
func MapGetByKeyListOp(cfg *Config, binName string, keys []Value, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtMapGetByKeyList, ctx, 0, int(returnType), ValueArray(keys))
}

// MapGetByKeyRangeOp selects entries with keys in [begin, end). A nil bound
// is open; inverting the return type selects everything outside the range.
func MapGetByKeyRangeOp(cfg *Config, binName string, begin, end Value, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtMapGetByKeyInterval, ctx, 0,
		rangeOperands(int(returnType), begin, end)...)
}

// MapGetByKeyRelativeIndexRangeOp selects entries starting at the given
// index relative to key, to the end.
func MapGetByKeyRelativeIndexRangeOp(cfg *Config, binName string, key Value, index int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtMapGetByKeyRelIndexRange, ctx, 0, int(returnType), key, index)
}

// MapGetByKeyRelativeIndexRangeCountOp selects count entries starting at
// the given index relative to key.
func MapGetByKeyRelativeIndexRangeCountOp(cfg *Config, binName string, key Value, index, count int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtMapGetByKeyRelIndexRange, ctx, 0, int(returnType), key, index, count)
}

// MapGetByValueOp selects entries whose value equals value.
func MapGetByValueOp(cfg *Config, binName string, value Value, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtMapGetByValue, ctx, 0, int(returnType), value)
}

// MapGetByValueListOp selects entries whose value matches any of values.
func MapGetByValueListOp(cfg *Config, binName string, values []Value, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtMapGetByValueList, ctx, 0, int(returnType), ValueArray(values))
}

// MapGetByValueRangeOp selects entries with values in [begin, end).
func MapGetByValueRangeOp(cfg *Config, binName string, begin, end Value, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtMapGetByValueInterval, ctx, 0,
		rangeOperands(int(returnType), begin, end)...)
}

// MapGetByValueRelativeRankRangeOp selects entries starting at the given
// rank relative to value, to the end.
func MapGetByValueRelativeRankRangeOp(cfg *Config, binName string, value Value, rank int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtMapGetByValueRelRankRange, ctx, 0, int(returnType), value, rank)
}

// MapGetByValueRelativeRankRangeCountOp selects count entries starting at
// the given rank relative to value.
func MapGetByValueRelativeRankRangeCountOp(cfg *Config, binName string, value Value, rank, count int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtMapGetByValueRelRankRange, ctx, 0, int(returnType), value, rank, count)
}

// MapGetByIndexOp selects the entry at key-order index.
func MapGetByIndexOp(cfg *Config, binName string, index int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtMapGetByIndex, ctx, 0, int(returnType), index)
}

// MapGetByIndexRangeOp selects all entries from index to the end.
func MapGetByIndexRangeOp(cfg *Config, binName string, index int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtMapGetByIndexRange, ctx, 0, int(returnType), index)
}

// MapGetByIndexRangeCountOp selects count entries starting at index.
func MapGetByIndexRangeCountOp(cfg *Config, binName string, index, count int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtMapGetByIndexRange, ctx, 0, int(returnType), index, count)
}

// MapGetByRankOp selects the entry with the given value rank.
func MapGetByRankOp(cfg *Config, binName string, rank int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtMapGetByRank, ctx, 0, int(returnType), rank)
}

// MapGetByRankRangeOp selects all entries from rank to the highest rank.
func MapGetByRankRangeOp(cfg *Config, binName string, rank int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtMapGetByRankRange, ctx, 0, int(returnType), rank)
}

// MapGetByRankRangeCountOp selects count entries starting at rank.
func MapGetByRankRangeCountOp(cfg *Config, binName string, rank, count int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTRead, binName, cdtMapGetByRankRange, ctx, 0, int(returnType), rank, count)
}

// MapRemoveByKeyOp removes the entry with the given key.
func MapRemoveByKeyOp(cfg *Config, binName string, key Value, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapRemoveByKey, ctx, 0, int(returnType), key)
}

// MapRemoveByKeyListOp removes entries whose key matches any of keys.
func MapRemoveByKeyListOp(cfg *Config, binName string, keys []Value, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapRemoveByKeyList, ctx, 0, int(returnType), ValueArray(keys))
}

// MapRemoveByKeyRangeOp removes entries with keys in [begin, end). A nil
// bound is open; inverting the return type removes everything outside the
// range.
func MapRemoveByKeyRangeOp(cfg *Config, binName string, begin, end Value, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapRemoveByKeyInterval, ctx, 0,
		rangeOperands(int(returnType), begin, end)...)
}

// MapRemoveByKeyRelativeIndexRangeOp removes entries starting at the given
// index relative to key, to the end.
func MapRemoveByKeyRelativeIndexRangeOp(cfg *Config, binName string, key Value, index int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapRemoveByKeyRelIndex, ctx, 0, int(returnType), key, index)
}

// MapRemoveByKeyRelativeIndexRangeCountOp removes count entries starting at
// the given index relative to key.
func MapRemoveByKeyRelativeIndexRangeCountOp(cfg *Config, binName string, key Value, index, count int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapRemoveByKeyRelIndex, ctx, 0, int(returnType), key, index, count)
}

// MapRemoveByValueOp removes entries whose value equals value.
func MapRemoveByValueOp(cfg *Config, binName string, value Value, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapRemoveByValue, ctx, 0, int(returnType), value)
}

// MapRemoveByValueListOp removes entries whose value matches any of values.
func MapRemoveByValueListOp(cfg *Config, binName string, values []Value, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapRemoveByValueList, ctx, 0, int(returnType), ValueArray(values))
}

// MapRemoveByValueRangeOp removes entries with values in [begin, end).
func MapRemoveByValueRangeOp(cfg *Config, binName string, begin, end Value, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapRemoveByValueInterval, ctx, 0,
		rangeOperands(int(returnType), begin, end)...)
}

// MapRemoveByValueRelativeRankRangeOp removes entries starting at the given
// rank relative to value, to the end.
func MapRemoveByValueRelativeRankRangeOp(cfg *Config, binName string, value Value, rank int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapRemoveByValueRelRank, ctx, 0, int(returnType), value, rank)
}

// MapRemoveByValueRelativeRankRangeCountOp removes count entries starting
// at the given rank relative to value.
func MapRemoveByValueRelativeRankRangeCountOp(cfg *Config, binName string, value Value, rank, count int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapRemoveByValueRelRank, ctx, 0, int(returnType), value, rank, count)
}

// MapRemoveByIndexOp removes the entry at key-order index.
func MapRemoveByIndexOp(cfg *Config, binName string, index int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapRemoveByIndex, ctx, 0, int(returnType), index)
}

// MapRemoveByIndexRangeOp removes all entries from index to the end.
func MapRemoveByIndexRangeOp(cfg *Config, binName string, index int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapRemoveByIndexRange, ctx, 0, int(returnType), index)
}

// MapRemoveByIndexRangeCountOp removes count entries starting at index.
func MapRemoveByIndexRangeCountOp(cfg *Config, binName string, index, count int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapRemoveByIndexRange, ctx, 0, int(returnType), index, count)
}

// MapRemoveByRankOp removes the entry with the given value rank.
func MapRemoveByRankOp(cfg *Config, binName string, rank int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapRemoveByRank, ctx, 0, int(returnType), rank)
}

// MapRemoveByRankRangeOp removes all entries from rank to the highest rank.
func MapRemoveByRankRangeOp(cfg *Config, binName string, rank int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapRemoveByRankRange, ctx, 0, int(returnType), rank)
}

// MapRemoveByRankRangeCountOp removes count entries starting at rank.
func MapRemoveByRankRangeCountOp(cfg *Config, binName string, rank, count int, returnType MapReturnType, ctx ...*CDTContext) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeCDTModify, binName, cdtMapRemoveByRankRange, ctx, 0, int(returnType), rank, count)
}
