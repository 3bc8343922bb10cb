// exp_map.go implements map expressions. Shapes mirror the map operation
// builders; modify variants always yield a map.
package aswire

func expMapModify(command int, operands []any, ctx []*CDTContext, bin *Exp) *Exp {
	return expCall(ExpTypeMap, expModuleCDT|expModifyFlag, command, operands, ctx, bin)
}

func expMapRead(resultType ExpType, command int, operands []any, ctx []*CDTContext, bin *Exp) *Exp {
	return expCall(resultType, expModuleCDT, command, operands, ctx, bin)
}

// ExpMapPut writes one key/value entry under the policy. The legacy
// update-only mode uses the replace opcode and omits the order attribute.
func ExpMapPut(policy *MapPolicy, key, value, bin *Exp, ctx ...*CDTContext) *Exp {
	if policy == nil {
		policy = DefaultMapPolicy()
	}
	if policy.Flags != MapWriteFlagsDefault {
		return expMapModify(cdtMapPut,
			[]any{key, value, int(policy.Order), int(policy.Flags)}, ctx, bin)
	}
	single, _, withAttr := policy.itemCommands()
	if !withAttr {
		return expMapModify(single, []any{key, value}, ctx, bin)
	}
	return expMapModify(single, []any{key, value, int(policy.Order)}, ctx, bin)
}

// ExpMapPutItems writes the entries of a map expression under the policy.
func ExpMapPutItems(policy *MapPolicy, amap, bin *Exp, ctx ...*CDTContext) *Exp {
	if policy == nil {
		policy = DefaultMapPolicy()
	}
	if policy.Flags != MapWriteFlagsDefault {
		return expMapModify(cdtMapPutItems,
			[]any{amap, int(policy.Order), int(policy.Flags)}, ctx, bin)
	}
	_, multi, withAttr := policy.itemCommands()
	if !withAttr {
		return expMapModify(multi, []any{amap}, ctx, bin)
	}
	return expMapModify(multi, []any{amap, int(policy.Order)}, ctx, bin)
}

// ExpMapIncrement increments the value at key by delta.
func ExpMapIncrement(policy *MapPolicy, key, delta, bin *Exp, ctx ...*CDTContext) *Exp {
	if policy == nil {
		policy = DefaultMapPolicy()
	}
	return expMapModify(cdtMapIncrement, []any{key, delta, int(policy.Order)}, ctx, bin)
}

// ExpMapClear removes all entries.
func ExpMapClear(bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapModify(cdtMapClear, nil, ctx, bin)
}

// ExpMapRemoveByKey removes the entry with the given key.
func ExpMapRemoveByKey(key, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapModify(cdtMapRemoveByKey, []any{int(MapReturnTypeNone), key}, ctx, bin)
}

// ExpMapRemoveByKeyList removes entries whose key matches any item of keys.
func ExpMapRemoveByKeyList(keys, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapModify(cdtMapRemoveByKeyList, []any{int(MapReturnTypeNone), keys}, ctx, bin)
}

// ExpMapRemoveByKeyRange removes entries with keys in [begin, end). A nil
// bound is open.
func ExpMapRemoveByKeyRange(begin, end, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapModify(cdtMapRemoveByKeyInterval,
		expRangeOperands(int(MapReturnTypeNone), begin, end), ctx, bin)
}

// ExpMapRemoveByKeyRelativeIndexRange removes entries starting at the
// given index relative to key, to the end.
func ExpMapRemoveByKeyRelativeIndexRange(key, index, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapModify(cdtMapRemoveByKeyRelIndex,
		[]any{int(MapReturnTypeNone), key, index}, ctx, bin)
}

// ExpMapRemoveByKeyRelativeIndexRangeCount removes count entries starting
// at the given index relative to key.
func ExpMapRemoveByKeyRelativeIndexRangeCount(key, index, count, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapModify(cdtMapRemoveByKeyRelIndex,
		[]any{int(MapReturnTypeNone), key, index, count}, ctx, bin)
}

// ExpMapRemoveByValue removes entries whose value equals value.
func ExpMapRemoveByValue(value, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapModify(cdtMapRemoveByValue, []any{int(MapReturnTypeNone), value}, ctx, bin)
}

// ExpMapRemoveByValueList removes entries whose value matches any item of
// values.
func ExpMapRemoveByValueList(values, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapModify(cdtMapRemoveByValueList, []any{int(MapReturnTypeNone), values}, ctx, bin)
}

// ExpMapRemoveByValueRange removes entries with values in [begin, end).
func ExpMapRemoveByValueRange(begin, end, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapModify(cdtMapRemoveByValueInterval,
		expRangeOperands(int(MapReturnTypeNone), begin, end), ctx, bin)
}

// ExpMapRemoveByValueRelativeRankRange removes entries starting at the
// given rank relative to value, to the end.
func ExpMapRemoveByValueRelativeRankRange(value, rank, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapModify(cdtMapRemoveByValueRelRank,
		[]any{int(MapReturnTypeNone), value, rank}, ctx, bin)
}

// ExpMapRemoveByValueRelativeRankRangeCount removes count entries starting
// at the given rank relative to value.
func ExpMapRemoveByValueRelativeRankRangeCount(value, rank, count, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapModify(cdtMapRemoveByValueRelRank,
		[]any{int(MapReturnTypeNone), value, rank, count}, ctx, bin)
}

// ExpMapRemoveByIndex removes the entry at key-order index.
func ExpMapRemoveByIndex(index, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapModify(cdtMapRemoveByIndex, []any{int(MapReturnTypeNone), index}, ctx, bin)
}

// ExpMapRemoveByIndexRange removes all entries from index to the end.
func ExpMapRemoveByIndexRange(index, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapModify(cdtMapRemoveByIndexRange, []any{int(MapReturnTypeNone), index}, ctx, bin)
}

// ExpMapRemoveByIndexRangeCount removes count entries starting at index.
func ExpMapRemoveByIndexRangeCount(index, count, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapModify(cdtMapRemoveByIndexRange,
		[]any{int(MapReturnTypeNone), index, count}, ctx, bin)
}

// ExpMapRemoveByRank removes the entry with the given value rank.
func ExpMapRemoveByRank(rank, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapModify(cdtMapRemoveByRank, []any{int(MapReturnTypeNone), rank}, ctx, bin)
}

// ExpMapRemoveByRankRange removes all entries from rank to the highest.
func ExpMapRemoveByRankRange(rank, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapModify(cdtMapRemoveByRankRange, []any{int(MapReturnTypeNone), rank}, ctx, bin)
}

// ExpMapRemoveByRankRangeCount removes count entries starting at rank.
func ExpMapRemoveByRankRangeCount(rank, count, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapModify(cdtMapRemoveByRankRange,
		[]any{int(MapReturnTypeNone), rank, count}, ctx, bin)
}

// ExpMapSize is the number of entries in the map expression.
func ExpMapSize(bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapRead(ExpTypeInt, cdtMapSize, nil, ctx, bin)
}

// ExpMapGetByKey selects the entry with the given key. valueType is the
// expected type of the selected value.
func ExpMapGetByKey(returnType MapReturnType, valueType ExpType, key, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapRead(valueType, cdtMapGetByKey, []any{int(returnType), key}, ctx, bin)
}

// ExpMapGetByKeyList selects entries whose key matches any item of keys.
func ExpMapGetByKeyList(returnType MapReturnType, keys, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expMapRead(t, cdtMapGetByKeyList, []any{int(returnType), keys}, ctx, bin), nil
}

// ExpMapGetByKeyRange selects entries with keys in [begin, end). A nil
// bound is open.
func ExpMapGetByKeyRange(returnType MapReturnType, begin, end, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expMapRead(t, cdtMapGetByKeyInterval,
		expRangeOperands(int(returnType), begin, end), ctx, bin), nil
}

// ExpMapGetByKeyRelativeIndexRange selects entries starting at the given
// index relative to key, to the end.
func ExpMapGetByKeyRelativeIndexRange(returnType MapReturnType, key, index, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expMapRead(t, cdtMapGetByKeyRelIndexRange,
		[]any{int(returnType), key, index}, ctx, bin), nil
}

// ExpMapGetByKeyRelativeIndexRangeCount selects count entries starting at
// the given index relative to key.
func ExpMapGetByKeyRelativeIndexRangeCount(returnType MapReturnType, key, index, count, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expMapRead(t, cdtMapGetByKeyRelIndexRange,
		[]any{int(returnType), key, index, count}, ctx, bin), nil
}

// ExpMapGetByValue selects entries whose value equals value.
func ExpMapGetByValue(returnType MapReturnType, value, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expMapRead(t, cdtMapGetByValue, []any{int(returnType), value}, ctx, bin), nil
}

// ExpMapGetByValueList selects entries whose value matches any item of
// values.
func ExpMapGetByValueList(returnType MapReturnType, values, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expMapRead(t, cdtMapGetByValueList, []any{int(returnType), values}, ctx, bin), nil
}

// ExpMapGetByValueRange selects entries with values in [begin, end).
func ExpMapGetByValueRange(returnType MapReturnType, begin, end, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expMapRead(t, cdtMapGetByValueInterval,
		expRangeOperands(int(returnType), begin, end), ctx, bin), nil
}

// ExpMapGetByValueRelativeRankRange selects entries starting at the given
// rank relative to value, to the end.
func ExpMapGetByValueRelativeRankRange(returnType MapReturnType, value, rank, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expMapRead(t, cdtMapGetByValueRelRankRange,
		[]any{int(returnType), value, rank}, ctx, bin), nil
}

// ExpMapGetByValueRelativeRankRangeCount selects count entries starting at
// the given rank relative to value.
func ExpMapGetByValueRelativeRankRangeCount(returnType MapReturnType, value, rank, count, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expMapRead(t, cdtMapGetByValueRelRankRange,
		[]any{int(returnType), value, rank, count}, ctx, bin), nil
}

// ExpMapGetByIndex selects the entry at key-order index. valueType is the
// expected type of the selected value.
func ExpMapGetByIndex(returnType MapReturnType, valueType ExpType, index, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapRead(valueType, cdtMapGetByIndex, []any{int(returnType), index}, ctx, bin)
}

// ExpMapGetByIndexRange selects all entries from index to the end.
func ExpMapGetByIndexRange(returnType MapReturnType, index, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expMapRead(t, cdtMapGetByIndexRange, []any{int(returnType), index}, ctx, bin), nil
}

// ExpMapGetByIndexRangeCount selects count entries starting at index.
func ExpMapGetByIndexRangeCount(returnType MapReturnType, index, count, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expMapRead(t, cdtMapGetByIndexRange,
		[]any{int(returnType), index, count}, ctx, bin), nil
}

// ExpMapGetByRank selects the entry with the given value rank. valueType
// is the expected type of the selected value.
func ExpMapGetByRank(returnType MapReturnType, valueType ExpType, rank, bin *Exp, ctx ...*CDTContext) *Exp {
	return expMapRead(valueType, cdtMapGetByRank, []any{int(returnType), rank}, ctx, bin)
}

// ExpMapGetByRankRange selects all entries from rank to the highest.
func ExpMapGetByRankRange(returnType MapReturnType, rank, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expMapRead(t, cdtMapGetByRankRange, []any{int(returnType), rank}, ctx, bin), nil
}

// ExpMapGetByRankRangeCount selects count entries starting at rank.
func ExpMapGetByRankRangeCount(returnType MapReturnType, rank, count, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expMapRead(t, cdtMapGetByRankRange,
		[]any{int(returnType), rank, count}, ctx, bin), nil
}
