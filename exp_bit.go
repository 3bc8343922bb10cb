// exp_bit.go implements blob bitwise expressions. Bit expressions carry
// no nesting context; modify variants yield the rewritten blob.
package aswire

func expBitModify(command int, operands []any, bin *Exp) *Exp {
	return expCall(ExpTypeBlob, expModuleBit|expModifyFlag, command, operands, nil, bin)
}

func expBitRead(resultType ExpType, command int, operands []any, bin *Exp) *Exp {
	return expCall(resultType, expModuleBit, command, operands, nil, bin)
}

// ExpBitResize resizes the blob expression to byteSize bytes.
func ExpBitResize(policy *BitPolicy, byteSize *Exp, resizeFlags BitResizeFlags, bin *Exp) *Exp {
	return expBitModify(cdtBitResize, []any{byteSize, policy.flags(), int(resizeFlags)}, bin)
}

// ExpBitInsert inserts value bytes at byteOffset.
func ExpBitInsert(policy *BitPolicy, byteOffset, value, bin *Exp) *Exp {
	return expBitModify(cdtBitInsert, []any{byteOffset, value, policy.flags()}, bin)
}

// ExpBitRemove removes byteSize bytes at byteOffset.
func ExpBitRemove(policy *BitPolicy, byteOffset, byteSize, bin *Exp) *Exp {
	return expBitModify(cdtBitRemove, []any{byteOffset, byteSize, policy.flags()}, bin)
}

// ExpBitSet overwrites bitSize bits at bitOffset with value bits.
func ExpBitSet(policy *BitPolicy, bitOffset, bitSize, value, bin *Exp) *Exp {
	return expBitModify(cdtBitSet, []any{bitOffset, bitSize, value, policy.flags()}, bin)
}

// ExpBitOr ORs value bits into bitSize bits at bitOffset.
func ExpBitOr(policy *BitPolicy, bitOffset, bitSize, value, bin *Exp) *Exp {
	return expBitModify(cdtBitOr, []any{bitOffset, bitSize, value, policy.flags()}, bin)
}

// ExpBitXor XORs value bits into bitSize bits at bitOffset.
func ExpBitXor(policy *BitPolicy, bitOffset, bitSize, value, bin *Exp) *Exp {
	return expBitModify(cdtBitXor, []any{bitOffset, bitSize, value, policy.flags()}, bin)
}

// ExpBitAnd ANDs value bits into bitSize bits at bitOffset.
func ExpBitAnd(policy *BitPolicy, bitOffset, bitSize, value, bin *Exp) *Exp {
	return expBitModify(cdtBitAnd, []any{bitOffset, bitSize, value, policy.flags()}, bin)
}

// ExpBitNot negates bitSize bits at bitOffset.
func ExpBitNot(policy *BitPolicy, bitOffset, bitSize, bin *Exp) *Exp {
	return expBitModify(cdtBitNot, []any{bitOffset, bitSize, policy.flags()}, bin)
}

// ExpBitLShift shifts bitSize bits at bitOffset left by shift.
func ExpBitLShift(policy *BitPolicy, bitOffset, bitSize, shift, bin *Exp) *Exp {
	return expBitModify(cdtBitLShift, []any{bitOffset, bitSize, shift, policy.flags()}, bin)
}

// ExpBitRShift shifts bitSize bits at bitOffset right by shift.
func ExpBitRShift(policy *BitPolicy, bitOffset, bitSize, shift, bin *Exp) *Exp {
	return expBitModify(cdtBitRShift, []any{bitOffset, bitSize, shift, policy.flags()}, bin)
}

// ExpBitAdd adds value to the bitSize-bit integer at bitOffset.
func ExpBitAdd(policy *BitPolicy, bitOffset, bitSize, value *Exp, signed bool, action BitOverflowAction, bin *Exp) *Exp {
	return expBitModify(cdtBitAdd,
		[]any{bitOffset, bitSize, value, policy.flags(), arithmeticFlags(signed, action)}, bin)
}

// ExpBitSubtract subtracts value from the bitSize-bit integer at bitOffset.
func ExpBitSubtract(policy *BitPolicy, bitOffset, bitSize, value *Exp, signed bool, action BitOverflowAction, bin *Exp) *Exp {
	return expBitModify(cdtBitSubtract,
		[]any{bitOffset, bitSize, value, policy.flags(), arithmeticFlags(signed, action)}, bin)
}

// ExpBitSetInt overwrites the bitSize-bit integer at bitOffset with value.
func ExpBitSetInt(policy *BitPolicy, bitOffset, bitSize, value, bin *Exp) *Exp {
	return expBitModify(cdtBitSetInt, []any{bitOffset, bitSize, value, policy.flags()}, bin)
}

// ExpBitGet reads bitSize bits at bitOffset as a blob.
func ExpBitGet(bitOffset, bitSize, bin *Exp) *Exp {
	return expBitRead(ExpTypeBlob, cdtBitGet, []any{bitOffset, bitSize}, bin)
}

// ExpBitCount counts the set bits in bitSize bits at bitOffset.
func ExpBitCount(bitOffset, bitSize, bin *Exp) *Exp {
	return expBitRead(ExpTypeInt, cdtBitCount, []any{bitOffset, bitSize}, bin)
}

// ExpBitLScan is the offset of the first bit equal to value, scanning from
// bitOffset.
func ExpBitLScan(bitOffset, bitSize, value, bin *Exp) *Exp {
	return expBitRead(ExpTypeInt, cdtBitLScan, []any{bitOffset, bitSize, value}, bin)
}

// ExpBitRScan is the offset of the last bit equal to value, scanning back
// from bitOffset+bitSize.
func ExpBitRScan(bitOffset, bitSize, value, bin *Exp) *Exp {
	return expBitRead(ExpTypeInt, cdtBitRScan, []any{bitOffset, bitSize, value}, bin)
}

// ExpBitGetInt reads the bitSize-bit integer at bitOffset. The signed flag
// operand is sent only when set.
func ExpBitGetInt(bitOffset, bitSize *Exp, signed bool, bin *Exp) *Exp {
	if signed {
		return expBitRead(ExpTypeInt, cdtBitGetInt, []any{bitOffset, bitSize, bitFlagSigned}, bin)
	}
	return expBitRead(ExpTypeInt, cdtBitGetInt, []any{bitOffset, bitSize}, bin)
}
