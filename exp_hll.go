// exp_hll.go implements HyperLogLog expressions. Modify variants yield
// the rewritten sketch.
package aswire

func expHLLModify(command int, operands []any, bin *Exp) *Exp {
	return expCall(ExpTypeHLL, expModuleHLL|expModifyFlag, command, operands, nil, bin)
}

func expHLLRead(resultType ExpType, command int, operands []any, bin *Exp) *Exp {
	return expCall(resultType, expModuleHLL, command, operands, nil, bin)
}

// ExpHLLInit creates an empty sketch with the given register count.
func ExpHLLInit(policy *HLLPolicy, indexBitCount, bin *Exp) *Exp {
	return ExpHLLInitWithMinHash(policy, indexBitCount, ExpIntVal(-1), bin)
}

// ExpHLLInitWithMinHash creates an empty sketch with register and min-hash
// bit counts.
func ExpHLLInitWithMinHash(policy *HLLPolicy, indexBitCount, minHashBitCount, bin *Exp) *Exp {
	return expHLLModify(cdtHLLInit, []any{indexBitCount, minHashBitCount, policy.flags()}, bin)
}

// ExpHLLAdd adds the items of a list expression to the sketch, creating it
// with indexBitCount registers when absent.
func ExpHLLAdd(policy *HLLPolicy, list, indexBitCount, bin *Exp) *Exp {
	return ExpHLLAddWithMinHash(policy, list, indexBitCount, ExpIntVal(-1), bin)
}

// ExpHLLAddWithMinHash adds the items of a list expression, creating the
// sketch with both bit counts when absent.
func ExpHLLAddWithMinHash(policy *HLLPolicy, list, indexBitCount, minHashBitCount, bin *Exp) *Exp {
	return expHLLModify(cdtHLLAdd, []any{list, indexBitCount, minHashBitCount, policy.flags()}, bin)
}

// ExpHLLGetCount is the estimated cardinality of the sketch.
func ExpHLLGetCount(bin *Exp) *Exp {
	return expHLLRead(ExpTypeInt, cdtHLLCount, nil, bin)
}

// ExpHLLGetUnion is the union of the sketch with the sketches in list.
func ExpHLLGetUnion(list, bin *Exp) *Exp {
	return expHLLRead(ExpTypeHLL, cdtHLLUnion, []any{list}, bin)
}

// ExpHLLGetUnionCount is the estimated cardinality of the union.
func ExpHLLGetUnionCount(list, bin *Exp) *Exp {
	return expHLLRead(ExpTypeInt, cdtHLLUnionCount, []any{list}, bin)
}

// ExpHLLGetIntersectCount is the estimated cardinality of the
// intersection.
func ExpHLLGetIntersectCount(list, bin *Exp) *Exp {
	return expHLLRead(ExpTypeInt, cdtHLLIntersectCount, []any{list}, bin)
}

// ExpHLLGetSimilarity is the estimated Jaccard similarity.
func ExpHLLGetSimilarity(list, bin *Exp) *Exp {
	return expHLLRead(ExpTypeFloat, cdtHLLSimilarity, []any{list}, bin)
}

// ExpHLLDescribe is a two-item list of the sketch's index and min-hash bit
// counts.
func ExpHLLDescribe(bin *Exp) *Exp {
	return expHLLRead(ExpTypeList, cdtHLLDescribe, nil, bin)
}
