// operation.go defines the generic operation envelope and the CDT command
// packing skeleton shared by the list, map, bit and HLL builders.
//
// A builder is a pure function from operation parameters to a packed byte
// buffer: no I/O, no shared state, safe to call concurrently. The buffer
// layout is [context block?][opcode][operand array] and must match the
// server's CDT interpreter byte for byte — an array header whose count does
// not match the packed element count misparses everything after it.
//
// Reference: Aerospike CDT command format, as_msg operation framing.
package aswire

// OperationType tags an operation as a read or a mutation of a particular
// subsystem. Values are the wire op codes of the record message.
type OperationType int

const (
	// OpTypeRead reads a bin.
	OpTypeRead OperationType = 1
	// OpTypeWrite writes a bin.
	OpTypeWrite OperationType = 2
	// OpTypeCDTRead reads through a list/map sub-operation.
	OpTypeCDTRead OperationType = 3
	// OpTypeCDTModify mutates through a list/map sub-operation.
	OpTypeCDTModify OperationType = 4
	// OpTypeAdd adds to an integer bin.
	OpTypeAdd OperationType = 5
	// OpTypeExpRead reads through an expression.
	OpTypeExpRead OperationType = 7
	// OpTypeExpModify mutates through an expression.
	OpTypeExpModify OperationType = 8
	// OpTypeAppend appends to a string/blob bin.
	OpTypeAppend OperationType = 9
	// OpTypePrepend prepends to a string/blob bin.
	OpTypePrepend OperationType = 10
	// OpTypeTouch updates record metadata only.
	OpTypeTouch OperationType = 11
	// OpTypeBitRead reads through a bit sub-operation.
	OpTypeBitRead OperationType = 12
	// OpTypeBitModify mutates through a bit sub-operation.
	OpTypeBitModify OperationType = 13
	// OpTypeDelete deletes a bin.
	OpTypeDelete OperationType = 14
	// OpTypeHLLRead reads through a HyperLogLog sub-operation.
	OpTypeHLLRead OperationType = 15
	// OpTypeHLLModify mutates through a HyperLogLog sub-operation.
	OpTypeHLLModify OperationType = 16
)

// Operation is a packed sub-operation bound to a bin, ready for the command
// serialization layer to frame into a record request.
type Operation struct {
	// OpType is the wire op code.
	OpType OperationType

	// BinName is the target bin.
	BinName string

	// BinValue is the operation payload. For CDT operations this is the
	// packed command buffer wrapped as a blob.
	BinValue Value
}

// operationHeaderSize is the fixed per-operation framing overhead in a
// record message: 4-byte size, op code, particle type, version, name length.
const operationHeaderSize = 8

// EstimateSize returns the exact framed size of the operation inside a
// record message, used to pre-size command buffers.
func (op *Operation) EstimateSize(cfg *Config) (int, error) {
	valueSize, err := op.BinValue.EstimateSize(cfg)
	if err != nil {
		return 0, err
	}
	return operationHeaderSize + len(op.BinName) + valueSize, nil
}

// cdtContextMarker opens the context block of a CDT command.
const cdtContextMarker = 0xff

// packCDTCommand packs a CDT sub-operation: the optional context block, the
// opcode, and the operand array. createFlag, when non-zero, is OR'd into the
// last context step's selector id only; intermediate steps are plain lookups.
func packCDTCommand(p *Packer, command int, ctx []*CDTContext, createFlag int, operands ...any) error {
	if len(ctx) > 0 {
		p.PackArrayBegin(3)
		p.PackInt64(cdtContextMarker)
		p.PackArrayBegin(len(ctx) * 2)
		last := len(ctx) - 1
		for i, c := range ctx {
			id := c.ID
			if i == last {
				id |= createFlag
			}
			p.PackInt64(int64(id))
			if err := c.Value.Pack(p); err != nil {
				return err
			}
		}
	}
	p.PackArrayBegin(len(operands) + 1)
	p.PackInt64(int64(command))
	for _, operand := range operands {
		if err := packOperand(p, operand); err != nil {
			return err
		}
	}
	return nil
}

// packOperand packs a single operand of a CDT command array.
func packOperand(p *Packer, operand any) error {
	switch v := operand.(type) {
	case int:
		p.PackInt64(int64(v))
	case int64:
		p.PackInt64(v)
	case Value:
		return v.Pack(p)
	case *Exp:
		return v.pack(p)
	default:
		return p.PackObject(operand)
	}
	return nil
}

// newCDTOperation builds an operation from a packed CDT command.
func newCDTOperation(cfg *Config, opType OperationType, binName string, command int,
	ctx []*CDTContext, createFlag int, operands ...any) (*Operation, error) {

	p := NewPacker(cfg)
	if err := packCDTCommand(p, command, ctx, createFlag, operands...); err != nil {
		return nil, err
	}
	return &Operation{OpType: opType, BinName: binName, BinValue: BytesValue(p.Bytes())}, nil
}

// rangeOperands builds the operand list for a range selector. The arity is
// driven purely by which bounds are present: exactly one bound packs a
// 2-operand form, both bounds a 3-operand form. A caller that wants an
// explicit nil bound passes NullValue{}, which counts as present.
func rangeOperands(returnType int, begin, end Value) []any {
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
