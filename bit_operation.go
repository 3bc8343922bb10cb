// bit_operation.go implements the blob bitwise operation builders.
//
// Bit operations address a blob bin by absolute bit offset and size;
// they carry no nesting context. Arithmetic variants pack a trailing
// flags operand combining the signed bit with an overflow action.
//
// Reference: Aerospike bit CDT command set.
package aswire

// Bit opcodes.
const (
	cdtBitResize   = 0
	cdtBitInsert   = 1
	cdtBitRemove   = 2
	cdtBitSet      = 3
	cdtBitOr       = 4
	cdtBitXor      = 5
	cdtBitAnd      = 6
	cdtBitNot      = 7
	cdtBitLShift   = 8
	cdtBitRShift   = 9
	cdtBitAdd      = 10
	cdtBitSubtract = 11
	cdtBitSetInt   = 12
	cdtBitGet      = 50
	cdtBitCount    = 51
	cdtBitLScan    = 52
	cdtBitRScan    = 53
	cdtBitGetInt   = 54
)

// bitFlagSigned marks an arithmetic operand as signed. It shares the flags
// operand with the overflow action.
const bitFlagSigned = 1

// BitWriteFlags modify bit write behavior. Flags combine with OR.
type BitWriteFlags int

const (
	// BitWriteFlagsDefault creates or updates the bin.
	BitWriteFlagsDefault BitWriteFlags = 0

	// BitWriteFlagsCreateOnly fails when the bin already exists.
	BitWriteFlagsCreateOnly BitWriteFlags = 1

	// BitWriteFlagsUpdateOnly fails when the bin does not exist.
	BitWriteFlagsUpdateOnly BitWriteFlags = 2

	// BitWriteFlagsNoFail turns policy violations into no-ops.
	BitWriteFlagsNoFail BitWriteFlags = 4

	// BitWriteFlagsPartial allows the valid subset of the write.
	BitWriteFlagsPartial BitWriteFlags = 8
)

// BitResizeFlags modify resize behavior.
type BitResizeFlags int

const (
	// BitResizeFlagsDefault resizes at the end and allows both directions.
	BitResizeFlagsDefault BitResizeFlags = 0

	// BitResizeFlagsFromFront adds or removes bytes at the front.
	BitResizeFlagsFromFront BitResizeFlags = 1

	// BitResizeFlagsGrowOnly rejects a shrinking resize.
	BitResizeFlagsGrowOnly BitResizeFlags = 2

	// BitResizeFlagsShrinkOnly rejects a growing resize.
	BitResizeFlagsShrinkOnly BitResizeFlags = 4
)

// BitOverflowAction selects what an overflowing add/subtract does. The
// values leave bit 0 free for the signed flag.
type BitOverflowAction int

const (
	// BitOverflowActionFail rejects the operation on overflow.
	BitOverflowActionFail BitOverflowAction = 0

	// BitOverflowActionSaturate clamps to the representable extreme.
	BitOverflowActionSaturate BitOverflowAction = 2

	// BitOverflowActionWrap wraps around modulo the bit size.
	BitOverflowActionWrap BitOverflowAction = 4
)

// BitPolicy carries bit write flags.
type BitPolicy struct {
	Flags BitWriteFlags
}

// DefaultBitPolicy returns a default-flags policy.
func DefaultBitPolicy() *BitPolicy {
	return &BitPolicy{}
}

func (p *BitPolicy) flags() int {
	if p == nil {
		return int(BitWriteFlagsDefault)
	}
	return int(p.Flags)
}

// arithmeticFlags merges the overflow action with the signed bit.
func arithmeticFlags(signed bool, action BitOverflowAction) int {
	f := int(action)
	if signed {
		f |= bitFlagSigned
	}
	return f
}

// BitResizeOp resizes the blob to byteSize bytes.
func BitResizeOp(cfg *Config, policy *BitPolicy, binName string, byteSize int, resizeFlags BitResizeFlags) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeBitModify, binName, cdtBitResize, nil, 0,
		byteSize, policy.flags(), int(resizeFlags))
}

// BitInsertOp inserts value bytes at byteOffset.
func BitInsertOp(cfg *Config, policy *BitPolicy, binName string, byteOffset int, value []byte) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeBitModify, binName, cdtBitInsert, nil, 0,
		byteOffset, BytesValue(value), policy.flags())
}

// BitRemoveOp removes byteSize bytes at byteOffset.
func BitRemoveOp(cfg *Config, policy *BitPolicy, binName string, byteOffset, byteSize int) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeBitModify, binName, cdtBitRemove, nil, 0,
		byteOffset, byteSize, policy.flags())
}

// BitSetOp overwrites bitSize bits at bitOffset with value bits.
func BitSetOp(cfg *Config, policy *BitPolicy, binName string, bitOffset, bitSize int, value []byte) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeBitModify, binName, cdtBitSet, nil, 0,
		bitOffset, bitSize, BytesValue(value), policy.flags())
}

// BitOrOp ORs value bits into bitSize bits at bitOffset.
func BitOrOp(cfg *Config, policy *BitPolicy, binName string, bitOffset, bitSize int, value []byte) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeBitModify, binName, cdtBitOr, nil, 0,
		bitOffset, bitSize, BytesValue(value), policy.flags())
}

// BitXorOp XORs value bits into bitSize bits at bitOffset.
func BitXorOp(cfg *Config, policy *BitPolicy, binName string, bitOffset, bitSize int, value []byte) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeBitModify, binName, cdtBitXor, nil, 0,
		bitOffset, bitSize, BytesValue(value), policy.flags())
}

// BitAndOp ANDs value bits into bitSize bits at bitOffset.
func BitAndOp(cfg *Config, policy *BitPolicy, binName string, bitOffset, bitSize int, value []byte) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeBitModify, binName, cdtBitAnd, nil, 0,
		bitOffset, bitSize, BytesValue(value), policy.flags())
}

// BitNotOp negates bitSize bits at bitOffset.
func BitNotOp(cfg *Config, policy *BitPolicy, binName string, bitOffset, bitSize int) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeBitModify, binName, cdtBitNot, nil, 0,
		bitOffset, bitSize, policy.flags())
}

// BitLShiftOp shifts bitSize bits at bitOffset left by shift.
func BitLShiftOp(cfg *Config, policy *BitPolicy, binName string, bitOffset, bitSize, shift int) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeBitModify, binName, cdtBitLShift, nil, 0,
		bitOffset, bitSize, shift, policy.flags())
}

// BitRShiftOp shifts bitSize bits at bitOffset right by shift.
func BitRShiftOp(cfg *Config, policy *BitPolicy, binName string, bitOffset, bitSize, shift int) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeBitModify, binName, cdtBitRShift, nil, 0,
		bitOffset, bitSize, shift, policy.flags())
}

// BitAddOp adds value to the bitSize-bit integer at bitOffset.
func BitAddOp(cfg *Config, policy *BitPolicy, binName string, bitOffset, bitSize int, value int64, signed bool, action BitOverflowAction) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeBitModify, binName, cdtBitAdd, nil, 0,
		bitOffset, bitSize, value, policy.flags(), arithmeticFlags(signed, action))
}

// BitSubtractOp subtracts value from the bitSize-bit integer at bitOffset.
func BitSubtractOp(cfg *Config, policy *BitPolicy, binName string, bitOffset, bitSize int, value int64, signed bool, action BitOverflowAction) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeBitModify, binName, cdtBitSubtract, nil, 0,
		bitOffset, bitSize, value, policy.flags(), arithmeticFlags(signed, action))
}

// BitSetIntOp overwrites the bitSize-bit integer at bitOffset with value.
func BitSetIntOp(cfg *Config, policy *BitPolicy, binName string, bitOffset, bitSize int, value int64) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeBitModify, binName, cdtBitSetInt, nil, 0,
		bitOffset, bitSize, value, policy.flags())
}

// BitGetOp returns bitSize bits at bitOffset.
func BitGetOp(cfg *Config, binName string, bitOffset, bitSize int) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeBitRead, binName, cdtBitGet, nil, 0, bitOffset, bitSize)
}

// BitCountOp returns the number of set bits in bitSize bits at bitOffset.
func BitCountOp(cfg *Config, binName string, bitOffset, bitSize int) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeBitRead, binName, cdtBitCount, nil, 0, bitOffset, bitSize)
}

// BitLScanOp returns the offset of the first bit equal to value, scanning
// from bitOffset.
func BitLScanOp(cfg *Config, binName string, bitOffset, bitSize int, value bool) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeBitRead, binName, cdtBitLScan, nil, 0,
		bitOffset, bitSize, BoolValue(value))
}

// BitRScanOp returns the offset of the last bit equal to value, scanning
// back from bitOffset+bitSize.
func BitRScanOp(cfg *Config, binName string, bitOffset, bitSize int, value bool) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeBitRead, binName, cdtBitRScan, nil, 0,
		bitOffset, bitSize, BoolValue(value))
}

// BitGetIntOp returns the bitSize-bit integer at bitOffset. The signed
// flag operand is sent only when set.
func BitGetIntOp(cfg *Config, binName string, bitOffset, bitSize int, signed bool) (*Operation, error) {
	if signed {
		return newCDTOperation(cfg, OpTypeBitRead, binName, cdtBitGetInt, nil, 0,
			bitOffset, bitSize, bitFlagSigned)
	}
	return newCDTOperation(cfg, OpTypeBitRead, binName, cdtBitGetInt, nil, 0, bitOffset, bitSize)
}
