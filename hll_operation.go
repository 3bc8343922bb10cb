// hll_operation.go implements the HyperLogLog operation builders.
//
// An HLL bin holds a probabilistic cardinality sketch parameterized by an
// index bit count (registers) and an optional min-hash bit count (set
// similarity). A bit count of -1 means "keep or default".
//
// Reference: Aerospike HLL command set.
package aswire

// HLL opcodes.
const (
	cdtHLLInit           = 0
	cdtHLLAdd            = 1
	cdtHLLSetUnion       = 2
	cdtHLLSetCount       = 3
	cdtHLLFold           = 4
	cdtHLLCount          = 50
	cdtHLLUnion          = 51
	cdtHLLUnionCount     = 52
	cdtHLLIntersectCount = 53
	cdtHLLSimilarity     = 54
	cdtHLLDescribe       = 55
)

// HLLWriteFlags modify HLL write behavior. Flags combine with OR.
type HLLWriteFlags int

const (
	// HLLWriteFlagsDefault creates or updates the bin.
	HLLWriteFlagsDefault HLLWriteFlags = 0

	// HLLWriteFlagsCreateOnly fails when the bin already exists.
	HLLWriteFlagsCreateOnly HLLWriteFlags = 1

	// HLLWriteFlagsUpdateOnly fails when the bin does not exist.
	HLLWriteFlagsUpdateOnly HLLWriteFlags = 2

	// HLLWriteFlagsNoFail turns policy violations into no-ops.
	HLLWriteFlagsNoFail HLLWriteFlags = 4

	// HLLWriteFlagsAllowFold allows folding to a smaller sketch when the
	// operand sketches disagree on index bits.
	HLLWriteFlagsAllowFold HLLWriteFlags = 8
)

// HLLPolicy carries HLL write flags.
type HLLPolicy struct {
	Flags HLLWriteFlags
}

// DefaultHLLPolicy returns a default-flags policy.
func DefaultHLLPolicy() *HLLPolicy {
	return &HLLPolicy{}
}

func (p *HLLPolicy) flags() int {
	if p == nil {
		return int(HLLWriteFlagsDefault)
	}
	return int(p.Flags)
}

// HLLInitOp creates an empty sketch with the given register count.
func HLLInitOp(cfg *Config, policy *HLLPolicy, binName string, indexBitCount int) (*Operation, error) {
	return HLLInitWithMinHashOp(cfg, policy, binName, indexBitCount, -1)
}

// HLLInitWithMinHashOp creates an empty sketch with register and min-hash
// bit counts.
func HLLInitWithMinHashOp(cfg *Config, policy *HLLPolicy, binName string, indexBitCount, minHashBitCount int) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeHLLModify, binName, cdtHLLInit, nil, 0,
		indexBitCount, minHashBitCount, policy.flags())
}

// HLLAddOp adds values to the sketch, creating it with indexBitCount
// registers when absent. Pass -1 to keep the existing geometry.
func HLLAddOp(cfg *Config, policy *HLLPolicy, binName string, values []Value, indexBitCount int) (*Operation, error) {
	return HLLAddWithMinHashOp(cfg, policy, binName, values, indexBitCount, -1)
}

// HLLAddWithMinHashOp adds values, creating the sketch with both bit counts
// when absent.
func HLLAddWithMinHashOp(cfg *Config, policy *HLLPolicy, binName string, values []Value, indexBitCount, minHashBitCount int) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeHLLModify, binName, cdtHLLAdd, nil, 0,
		ValueArray(values), indexBitCount, minHashBitCount, policy.flags())
}

// HLLSetUnionOp folds the given sketches into the bin.
func HLLSetUnionOp(cfg *Config, policy *HLLPolicy, binName string, sketches []HLLValue) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeHLLModify, binName, cdtHLLSetUnion, nil, 0,
		hllOperand(sketches), policy.flags())
}

// HLLRefreshCountOp recomputes and caches the sketch's cardinality.
func HLLRefreshCountOp(cfg *Config, binName string) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeHLLModify, binName, cdtHLLSetCount, nil, 0)
}

// HLLFoldOp shrinks the sketch to indexBitCount registers. Min-hash
// sketches cannot fold.
func HLLFoldOp(cfg *Config, binName string, indexBitCount int) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeHLLModify, binName, cdtHLLFold, nil, 0, indexBitCount)
}

// HLLGetCountOp returns the estimated cardinality.
func HLLGetCountOp(cfg *Config, binName string) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeHLLRead, binName, cdtHLLCount, nil, 0)
}

// HLLGetUnionOp returns the union of the bin with the given sketches.
func HLLGetUnionOp(cfg *Config, binName string, sketches []HLLValue) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeHLLRead, binName, cdtHLLUnion, nil, 0, hllOperand(sketches))
}

// HLLGetUnionCountOp returns the estimated cardinality of the union.
func HLLGetUnionCountOp(cfg *Config, binName string, sketches []HLLValue) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeHLLRead, binName, cdtHLLUnionCount, nil, 0, hllOperand(sketches))
}

// HLLGetIntersectCountOp returns the estimated cardinality of the
// intersection. More than two min-hash-free operands is a server error.
func HLLGetIntersectCountOp(cfg *Config, binName string, sketches []HLLValue) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeHLLRead, binName, cdtHLLIntersectCount, nil, 0, hllOperand(sketches))
}

// HLLGetSimilarityOp returns the estimated Jaccard similarity.
func HLLGetSimilarityOp(cfg *Config, binName string, sketches []HLLValue) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeHLLRead, binName, cdtHLLSimilarity, nil, 0, hllOperand(sketches))
}

// HLLDescribeOp returns the sketch's index and min-hash bit counts.
func HLLDescribeOp(cfg *Config, binName string) (*Operation, error) {
	return newCDTOperation(cfg, OpTypeHLLRead, binName, cdtHLLDescribe, nil, 0)
}

func hllOperand(sketches []HLLValue) ValueArray {
	values := make([]Value, len(sketches))
	for i, s := range sketches {
		values[i] = s
	}
	return ValueArray(values)
}
