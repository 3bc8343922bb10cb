// exp_list.go implements list expressions: typed module calls that apply
// a list sub-operation to a list-valued expression. Reads infer their
// result type from the return type; modify variants always yield a list.
package aswire

// expRangeOperands is the expression form of rangeOperands. The same
// arity rules apply, with bounds supplied as expressions.
func expRangeOperands(returnType int, begin, end *Exp) []any {
	switch {
	case begin != nil && end != nil:
		return []any{returnType, begin, end}
	case begin != nil:
		return []any{returnType, begin}
	case end != nil:
		return []any{returnType, end}
	default:
		return []any{returnType, NullValue{}}
	}
}

func expListModify(command int, operands []any, ctx []*CDTContext, bin *Exp) *Exp {
	return expCall(ExpTypeList, expModuleCDT|expModifyFlag, command, operands, ctx, bin)
}

func expListRead(resultType ExpType, command int, operands []any, ctx []*CDTContext, bin *Exp) *Exp {
	return expCall(resultType, expModuleCDT, command, operands, ctx, bin)
}

// ExpListAppend appends value to the list expression.
func ExpListAppend(policy *ListPolicy, value, bin *Exp, ctx ...*CDTContext) *Exp {
	if policy == nil {
		policy = DefaultListPolicy()
	}
	return expListModify(cdtListAppend,
		[]any{value, int(policy.Order), int(policy.Flags)}, ctx, bin)
}

// ExpListAppendItems appends the items of a list expression.
func ExpListAppendItems(policy *ListPolicy, list, bin *Exp, ctx ...*CDTContext) *Exp {
	if policy == nil {
		policy = DefaultListPolicy()
	}
	return expListModify(cdtListAppendItems,
		[]any{list, int(policy.Order), int(policy.Flags)}, ctx, bin)
}

// ExpListInsert inserts value at index.
func ExpListInsert(policy *ListPolicy, index, value, bin *Exp, ctx ...*CDTContext) *Exp {
	if policy == nil {
		policy = DefaultListPolicy()
	}
	return expListModify(cdtListInsert, []any{index, value, int(policy.Flags)}, ctx, bin)
}

// ExpListInsertItems inserts the items of a list expression at index.
func ExpListInsertItems(policy *ListPolicy, index, list, bin *Exp, ctx ...*CDTContext) *Exp {
	if policy == nil {
		policy = DefaultListPolicy()
	}
	return expListModify(cdtListInsertItems, []any{index, list, int(policy.Flags)}, ctx, bin)
}

// ExpListIncrement increments the value at index by delta.
func ExpListIncrement(policy *ListPolicy, index, delta, bin *Exp, ctx ...*CDTContext) *Exp {
	if policy == nil {
		policy = DefaultListPolicy()
	}
	return expListModify(cdtListIncrement,
		[]any{index, delta, int(policy.Order), int(policy.Flags)}, ctx, bin)
}

// ExpListSet replaces the value at index.
func ExpListSet(policy *ListPolicy, index, value, bin *Exp, ctx ...*CDTContext) *Exp {
	if policy == nil {
		policy = DefaultListPolicy()
	}
	return expListModify(cdtListSet, []any{index, value, int(policy.Flags)}, ctx, bin)
}

// ExpListClear removes all values.
func ExpListClear(bin *Exp, ctx ...*CDTContext) *Exp {
	return expListModify(cdtListClear, nil, ctx, bin)
}

// ExpListSort sorts the list.
func ExpListSort(sortFlags ListSortFlags, bin *Exp, ctx ...*CDTContext) *Exp {
	return expListModify(cdtListSort, []any{int(sortFlags)}, ctx, bin)
}

// ExpListRemoveByValue removes values equal to value.
func ExpListRemoveByValue(value, bin *Exp, ctx ...*CDTContext) *Exp {
	return expListModify(cdtListRemoveByValue,
		[]any{int(ListReturnTypeNone), value}, ctx, bin)
}

// ExpListRemoveByValueList removes values matching any item of list.
func ExpListRemoveByValueList(list, bin *Exp, ctx ...*CDTContext) *Exp {
	return expListModify(cdtListRemoveByValueList,
		[]any{int(ListReturnTypeNone), list}, ctx, bin)
}

// ExpListRemoveByValueRange removes values in [begin, end). A nil bound
// is open.
func ExpListRemoveByValueRange(begin, end, bin *Exp, ctx ...*CDTContext) *Exp {
	return expListModify(cdtListRemoveByValueInterval,
		expRangeOperands(int(ListReturnTypeNone), begin, end), ctx, bin)
}

// ExpListRemoveByValueRelativeRankRange removes values starting at the
// given rank relative to value, to the end.
func ExpListRemoveByValueRelativeRankRange(value, rank, bin *Exp, ctx ...*CDTContext) *Exp {
	return expListModify(cdtListRemoveByValueRelRank,
		[]any{int(ListReturnTypeNone), value, rank}, ctx, bin)
}

// ExpListRemoveByValueRelativeRankRangeCount removes count values starting
// at the given rank relative to value.
func ExpListRemoveByValueRelativeRankRangeCount(value, rank, count, bin *Exp, ctx ...*CDTContext) *Exp {
	return expListModify(cdtListRemoveByValueRelRank,
		[]any{int(ListReturnTypeNone), value, rank, count}, ctx, bin)
}

// ExpListRemoveByIndex removes the value at index.
func ExpListRemoveByIndex(index, bin *Exp, ctx ...*CDTContext) *Exp {
	return expListModify(cdtListRemoveByIndex,
		[]any{int(ListReturnTypeNone), index}, ctx, bin)
}

// ExpListRemoveByIndexRange removes all values from index to the end.
func ExpListRemoveByIndexRange(index, bin *Exp, ctx ...*CDTContext) *Exp {
	return expListModify(cdtListRemoveByIndexRange,
		[]any{int(ListReturnTypeNone), index}, ctx, bin)
}

// ExpListRemoveByIndexRangeCount removes count values starting at index.
func ExpListRemoveByIndexRangeCount(index, count, bin *Exp, ctx ...*CDTContext) *Exp {
	return expListModify(cdtListRemoveByIndexRange,
		[]any{int(ListReturnTypeNone), index, count}, ctx, bin)
}

// ExpListRemoveByRank removes the value with the given rank.
func ExpListRemoveByRank(rank, bin *Exp, ctx ...*CDTContext) *Exp {
	return expListModify(cdtListRemoveByRank,
		[]any{int(ListReturnTypeNone), rank}, ctx, bin)
}

// ExpListRemoveByRankRange removes all values from rank to the highest.
func ExpListRemoveByRankRange(rank, bin *Exp, ctx ...*CDTContext) *Exp {
	return expListModify(cdtListRemoveByRankRange,
		[]any{int(ListReturnTypeNone), rank}, ctx, bin)
}

// ExpListRemoveByRankRangeCount removes count values starting at rank.
func ExpListRemoveByRankRangeCount(rank, count, bin *Exp, ctx ...*CDTContext) *Exp {
	return expListModify(cdtListRemoveByRankRange,
		[]any{int(ListReturnTypeNone), rank, count}, ctx, bin)
}

// ExpListSize is the number of values in the list expression.
func ExpListSize(bin *Exp, ctx ...*CDTContext) *Exp {
	return expListRead(ExpTypeInt, cdtListSize, nil, ctx, bin)
}

// ExpListGetByValue selects values equal to value.
func ExpListGetByValue(returnType ListReturnType, value, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expListRead(t, cdtListGetByValue, []any{int(returnType), value}, ctx, bin), nil
}

// ExpListGetByValueList selects values matching any item of list.
func ExpListGetByValueList(returnType ListReturnType, list, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expListRead(t, cdtListGetByValueList, []any{int(returnType), list}, ctx, bin), nil
}

// ExpListGetByValueRange selects values in [begin, end). A nil bound is
// open.
func ExpListGetByValueRange(returnType ListReturnType, begin, end, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expListRead(t, cdtListGetByValueInterval,
		expRangeOperands(int(returnType), begin, end), ctx, bin), nil
}

// ExpListGetByValueRelativeRankRange selects values starting at the given
// rank relative to value, to the end.
func ExpListGetByValueRelativeRankRange(returnType ListReturnType, value, rank, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expListRead(t, cdtListGetByValueRelRank,
		[]any{int(returnType), value, rank}, ctx, bin), nil
}

// ExpListGetByValueRelativeRankRangeCount selects count values starting at
// the given rank relative to value.
func ExpListGetByValueRelativeRankRangeCount(returnType ListReturnType, value, rank, count, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expListRead(t, cdtListGetByValueRelRank,
		[]any{int(returnType), value, rank, count}, ctx, bin), nil
}

// ExpListGetByIndex selects the value at index. valueType is the expected
// type of the selected value; it drives the expression's result type when
// the return type asks for the value itself.
func ExpListGetByIndex(returnType ListReturnType, valueType ExpType, index, bin *Exp, ctx ...*CDTContext) *Exp {
	return expListRead(valueType, cdtListGetByIndex, []any{int(returnType), index}, ctx, bin)
}

// ExpListGetByIndexRange selects all values from index to the end.
func ExpListGetByIndexRange(returnType ListReturnType, index, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expListRead(t, cdtListGetByIndexRange, []any{int(returnType), index}, ctx, bin), nil
}

// ExpListGetByIndexRangeCount selects count values starting at index.
func ExpListGetByIndexRangeCount(returnType ListReturnType, index, count, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expListRead(t, cdtListGetByIndexRange,
		[]any{int(returnType), index, count}, ctx, bin), nil
}

// ExpListGetByRank selects the value with the given rank. valueType is the
// expected type of the selected value.
func ExpListGetByRank(returnType ListReturnType, valueType ExpType, rank, bin *Exp, ctx ...*CDTContext) *Exp {
	return expListRead(valueType, cdtListGetByRank, []any{int(returnType), rank}, ctx, bin)
}

// ExpListGetByRankRange selects all values from rank to the highest.
func ExpListGetByRankRange(returnType ListReturnType, rank, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expListRead(t, cdtListGetByRankRange, []any{int(returnType), rank}, ctx, bin), nil
}

// ExpListGetByRankRangeCount selects count values starting at rank.
func ExpListGetByRankRangeCount(returnType ListReturnType, rank, count, bin *Exp, ctx ...*CDTContext) (*Exp, error) {
	t, err := returnType.ValueType()
	if err != nil {
		return nil, err
	}
	return expListRead(t, cdtListGetByRankRange,
		[]any{int(returnType), rank, count}, ctx, bin), nil
}
