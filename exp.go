// exp.go implements the filter-expression tree.
//
// An expression is a tree of operator, literal, bin-access, and record-
// metadata nodes. Building a node never allocates wire bytes; the whole
// tree packs in one pass when an operation or filter needs it. List
// literals pack behind a quote marker so the server can tell them apart
// from operator arrays.
//
// Reference: Aerospike expression wire format.
package aswire

// Expression operator codes.
const (
	expOpEQ           = 1
	expOpNE           = 2
	expOpGT           = 3
	expOpGE           = 4
	expOpLT           = 5
	expOpLE           = 6
	expOpRegex        = 7
	expOpGeo          = 8
	expOpAnd          = 16
	expOpOr           = 17
	expOpNot          = 18
	expOpExclusive    = 19
	expOpAdd          = 20
	expOpSub          = 21
	expOpMul          = 22
	expOpDiv          = 23
	expOpPow          = 24
	expOpLog          = 25
	expOpMod          = 26
	expOpAbs          = 27
	expOpFloor        = 28
	expOpCeil         = 29
	expOpToInt        = 30
	expOpToFloat      = 31
	expOpIntAnd       = 32
	expOpIntOr        = 33
	expOpIntXor       = 34
	expOpIntNot       = 35
	expOpIntLShift    = 36
	expOpIntRShift    = 37
	expOpIntARShift   = 38
	expOpIntCount     = 39
	expOpIntLScan     = 40
	expOpIntRScan     = 41
	expOpMin          = 50
	expOpMax          = 51
	expOpDigestModulo = 64
	expOpDeviceSize   = 65
	expOpLastUpdate   = 66
	expOpSinceUpdate  = 67
	expOpVoidTime     = 68
	expOpTTL          = 69
	expOpSetName      = 70
	expOpKeyExists    = 71
	expOpIsTombstone  = 72
	expOpMemorySize   = 73
	expOpRecordSize   = 74
	expOpKey          = 80
	expOpBin          = 81
	expOpBinType      = 82
	expOpCond         = 123
	expOpVar          = 124
	expOpLet          = 125
	expOpQuoted       = 126
	expOpCall         = 127
)

// Internal node markers; they never reach the wire.
const (
	expCmdValue = -1 // literal
	expCmdDef   = -2 // variable binding inside LET
)

// Call modules. List and map share the CDT module; the modify flag marks
// an expression that rewrites the bin locally instead of reading it.
const (
	expModuleCDT int64 = 0
	expModuleBit int64 = 1
	expModuleHLL int64 = 2

	expModifyFlag int64 = 0x40
)

// ExpType is the value type an expression node evaluates to.
type ExpType int

const (
	ExpTypeNil    ExpType = 0
	ExpTypeBool   ExpType = 1
	ExpTypeInt    ExpType = 2
	ExpTypeString ExpType = 3
	ExpTypeList   ExpType = 4
	ExpTypeMap    ExpType = 5
	ExpTypeBlob   ExpType = 6
	ExpTypeFloat  ExpType = 7
	ExpTypeGeo    ExpType = 8
	ExpTypeHLL    ExpType = 9
)

// String implements fmt.Stringer.
func (t ExpType) String() string {
	switch t {
	case ExpTypeNil:
		return "NIL"
	case ExpTypeBool:
		return "BOOL"
	case ExpTypeInt:
		return "INT"
	case ExpTypeString:
		return "STRING"
	case ExpTypeList:
		return "LIST"
	case ExpTypeMap:
		return "MAP"
	case ExpTypeBlob:
		return "BLOB"
	case ExpTypeFloat:
		return "FLOAT"
	case ExpTypeGeo:
		return "GEO"
	case ExpTypeHLL:
		return "HLL"
	default:
		return "UNKNOWN"
	}
}

// ExpRegexFlags modify regular-expression comparisons. Flags combine
// with OR and follow POSIX cflags values.
type ExpRegexFlags int64

const (
	// ExpRegexFlagNone uses basic POSIX syntax, case sensitive.
	ExpRegexFlagNone ExpRegexFlags = 0

	// ExpRegexFlagExtended uses extended POSIX syntax.
	ExpRegexFlagExtended ExpRegexFlags = 1

	// ExpRegexFlagICase ignores case.
	ExpRegexFlagICase ExpRegexFlags = 2

	// ExpRegexFlagNoSub reports match/no-match only.
	ExpRegexFlagNoSub ExpRegexFlags = 4

	// ExpRegexFlagNewline treats newline as a line separator.
	ExpRegexFlagNewline ExpRegexFlags = 8
)

// Exp is one node of a filter-expression tree. Build trees with the Exp*
// constructors; a zero Exp is not valid.
type Exp struct {
	cmd      int
	val      Value
	expType  ExpType // bin/key value type, call result type
	name     string  // bin, variable, or regex text
	flags    int64   // regex flags or call module bits
	children []*Exp

	// call payload, packed inline during pack
	command  int
	operands []any
	ctx      []*CDTContext
}

// -----------------------------------------------------------------------------
// Literals
// -----------------------------------------------------------------------------

// ExpNilVal is the nil literal.
func ExpNilVal() *Exp { return &Exp{cmd: expCmdValue, val: NullValue{}} }

// ExpBoolVal is a boolean literal.
func ExpBoolVal(v bool) *Exp { return &Exp{cmd: expCmdValue, val: BoolValue(v)} }

// ExpIntVal is an integer literal.
func ExpIntVal(v int64) *Exp { return &Exp{cmd: expCmdValue, val: LongValue(v)} }

// ExpFloatVal is a float literal.
func ExpFloatVal(v float64) *Exp { return &Exp{cmd: expCmdValue, val: DoubleValue(v)} }

// ExpStringVal is a string literal.
func ExpStringVal(v string) *Exp { return &Exp{cmd: expCmdValue, val: StringValue(v)} }

// ExpBlobVal is a byte-blob literal.
func ExpBlobVal(v []byte) *Exp { return &Exp{cmd: expCmdValue, val: BytesValue(v)} }

// ExpGeoVal is a GeoJSON literal.
func ExpGeoVal(doc string) *Exp { return &Exp{cmd: expCmdValue, val: GeoJSONValue(doc)} }

// ExpListVal is a list literal. It packs behind the quote marker.
func ExpListVal(values ...Value) *Exp {
	return &Exp{cmd: expOpQuoted, val: ValueArray(values)}
}

// ExpMapVal is a map literal.
func ExpMapVal(m MapValue) *Exp { return &Exp{cmd: expCmdValue, val: m} }

// ExpVal is a literal from an arbitrary Value.
func ExpVal(v Value) *Exp {
	if _, ok := v.(ValueArray); ok {
		return &Exp{cmd: expOpQuoted, val: v}
	}
	if _, ok := v.(ListValue); ok {
		return &Exp{cmd: expOpQuoted, val: v}
	}
	return &Exp{cmd: expCmdValue, val: v}
}

// -----------------------------------------------------------------------------
// Bin and record access
// -----------------------------------------------------------------------------

// ExpBin reads a bin as the given value type.
func ExpBin(name string, t ExpType) *Exp {
	return &Exp{cmd: expOpBin, expType: t, name: name}
}

// ExpIntBin reads an integer bin.
func ExpIntBin(name string) *Exp { return ExpBin(name, ExpTypeInt) }

// ExpFloatBin reads a float bin.
func ExpFloatBin(name string) *Exp { return ExpBin(name, ExpTypeFloat) }

// ExpStringBin reads a string bin.
func ExpStringBin(name string) *Exp { return ExpBin(name, ExpTypeString) }

// ExpBoolBin reads a boolean bin.
func ExpBoolBin(name string) *Exp { return ExpBin(name, ExpTypeBool) }

// ExpBlobBin reads a blob bin.
func ExpBlobBin(name string) *Exp { return ExpBin(name, ExpTypeBlob) }

// ExpListBin reads a list bin.
func ExpListBin(name string) *Exp { return ExpBin(name, ExpTypeList) }

// ExpMapBin reads a map bin.
func ExpMapBin(name string) *Exp { return ExpBin(name, ExpTypeMap) }

// ExpGeoBin reads a GeoJSON bin.
func ExpGeoBin(name string) *Exp { return ExpBin(name, ExpTypeGeo) }

// ExpHLLBin reads a HyperLogLog bin.
func ExpHLLBin(name string) *Exp { return ExpBin(name, ExpTypeHLL) }

// ExpBinType returns a bin's particle type as an integer.
func ExpBinType(name string) *Exp {
	return &Exp{cmd: expOpBinType, name: name}
}

// ExpBinExists is true when the bin holds any value.
func ExpBinExists(name string) *Exp {
	return ExpNE(ExpBinType(name), ExpIntVal(0))
}

// ExpKey reads the record's user key as the given type. The key must have
// been stored with the record.
func ExpKey(t ExpType) *Exp {
	return &Exp{cmd: expOpKey, expType: t}
}

// ExpKeyExists is true when the record stores its user key.
func ExpKeyExists() *Exp { return &Exp{cmd: expOpKeyExists} }

// ExpSetName reads the record's set name.
func ExpSetName() *Exp { return &Exp{cmd: expOpSetName} }

// ExpDeviceSize reads the record's storage size in bytes.
func ExpDeviceSize() *Exp { return &Exp{cmd: expOpDeviceSize} }

// ExpMemorySize reads the record's memory size in bytes.
func ExpMemorySize() *Exp { return &Exp{cmd: expOpMemorySize} }

// ExpRecordSize reads the record's size in bytes, any storage.
func ExpRecordSize() *Exp { return &Exp{cmd: expOpRecordSize} }

// ExpLastUpdate reads the record's last-update time in nanoseconds since
// the epoch.
func ExpLastUpdate() *Exp { return &Exp{cmd: expOpLastUpdate} }

// ExpSinceUpdate reads milliseconds since the record's last update.
func ExpSinceUpdate() *Exp { return &Exp{cmd: expOpSinceUpdate} }

// ExpVoidTime reads the record's expiration time in nanoseconds since the
// epoch.
func ExpVoidTime() *Exp { return &Exp{cmd: expOpVoidTime} }

// ExpTTL reads the record's remaining life in seconds.
func ExpTTL() *Exp { return &Exp{cmd: expOpTTL} }

// ExpIsTombstone is true for a tombstoned record.
func ExpIsTombstone() *Exp { return &Exp{cmd: expOpIsTombstone} }

// ExpDigestModulo reads the record digest modulo m.
func ExpDigestModulo(m int64) *Exp {
	return &Exp{cmd: expOpDigestModulo, val: LongValue(m)}
}

// -----------------------------------------------------------------------------
// Comparisons and logic
// -----------------------------------------------------------------------------

// ExpEQ is left == right.
func ExpEQ(left, right *Exp) *Exp { return expCmd(expOpEQ, left, right) }

// ExpNE is left != right.
func ExpNE(left, right *Exp) *Exp { return expCmd(expOpNE, left, right) }

// ExpGT is left > right.
func ExpGT(left, right *Exp) *Exp { return expCmd(expOpGT, left, right) }

// ExpGE is left >= right.
func ExpGE(left, right *Exp) *Exp { return expCmd(expOpGE, left, right) }

// ExpLT is left < right.
func ExpLT(left, right *Exp) *Exp { return expCmd(expOpLT, left, right) }

// ExpLE is left <= right.
func ExpLE(left, right *Exp) *Exp { return expCmd(expOpLE, left, right) }

// ExpRegexCompare matches a string expression against a POSIX regex.
func ExpRegexCompare(regex string, flags ExpRegexFlags, bin *Exp) *Exp {
	return &Exp{cmd: expOpRegex, name: regex, flags: int64(flags), children: []*Exp{bin}}
}

// ExpGeoCompare is true when the two GeoJSON expressions intersect.
func ExpGeoCompare(left, right *Exp) *Exp { return expCmd(expOpGeo, left, right) }

// ExpAnd is true when all operands are true.
func ExpAnd(exps ...*Exp) *Exp { return expCmd(expOpAnd, exps...) }

// ExpOr is true when any operand is true.
func ExpOr(exps ...*Exp) *Exp { return expCmd(expOpOr, exps...) }

// ExpNot negates a boolean expression.
func ExpNot(exp *Exp) *Exp { return expCmd(expOpNot, exp) }

// ExpExclusive is true when exactly one operand is true.
func ExpExclusive(exps ...*Exp) *Exp { return expCmd(expOpExclusive, exps...) }

// -----------------------------------------------------------------------------
// Arithmetic
// -----------------------------------------------------------------------------

// ExpNumAdd sums the operands. All operands must share a numeric type.
func ExpNumAdd(exps ...*Exp) *Exp { return expCmd(expOpAdd, exps...) }

// ExpNumSub subtracts the trailing operands from the first.
func ExpNumSub(exps ...*Exp) *Exp { return expCmd(expOpSub, exps...) }

// ExpNumMul multiplies the operands.
func ExpNumMul(exps ...*Exp) *Exp { return expCmd(expOpMul, exps...) }

// ExpNumDiv divides the first operand by the trailing ones.
func ExpNumDiv(exps ...*Exp) *Exp { return expCmd(expOpDiv, exps...) }

// ExpNumPow is base raised to exponent. Float only.
func ExpNumPow(base, exponent *Exp) *Exp { return expCmd(expOpPow, base, exponent) }

// ExpNumLog is the log of num in the given base. Float only.
func ExpNumLog(num, base *Exp) *Exp { return expCmd(expOpLog, num, base) }

// ExpNumMod is numerator modulo denominator. Integer only.
func ExpNumMod(numerator, denominator *Exp) *Exp {
	return expCmd(expOpMod, numerator, denominator)
}

// ExpNumAbs is the absolute value.
func ExpNumAbs(value *Exp) *Exp { return expCmd(expOpAbs, value) }

// ExpNumFloor rounds a float down to the nearest integer value.
func ExpNumFloor(num *Exp) *Exp { return expCmd(expOpFloor, num) }

// ExpNumCeil rounds a float up to the nearest integer value.
func ExpNumCeil(num *Exp) *Exp { return expCmd(expOpCeil, num) }

// ExpToInt converts a float expression to an integer.
func ExpToInt(num *Exp) *Exp { return expCmd(expOpToInt, num) }

// ExpToFloat converts an integer expression to a float.
func ExpToFloat(num *Exp) *Exp { return expCmd(expOpToFloat, num) }

// ExpNumMin is the smallest operand.
func ExpNumMin(exps ...*Exp) *Exp { return expCmd(expOpMin, exps...) }

// ExpNumMax is the largest operand.
func ExpNumMax(exps ...*Exp) *Exp { return expCmd(expOpMax, exps...) }

// -----------------------------------------------------------------------------
// Integer bitwise
// -----------------------------------------------------------------------------

// ExpIntAnd ANDs the integer operands.
func ExpIntAnd(exps ...*Exp) *Exp { return expCmd(expOpIntAnd, exps...) }

// ExpIntOr ORs the integer operands.
func ExpIntOr(exps ...*Exp) *Exp { return expCmd(expOpIntOr, exps...) }

// ExpIntXor XORs the integer operands.
func ExpIntXor(exps ...*Exp) *Exp { return expCmd(expOpIntXor, exps...) }

// ExpIntNot inverts the bits of an integer expression.
func ExpIntNot(exp *Exp) *Exp { return expCmd(expOpIntNot, exp) }

// ExpIntLShift shifts value left by shift bits.
func ExpIntLShift(value, shift *Exp) *Exp { return expCmd(expOpIntLShift, value, shift) }

// ExpIntRShift shifts value right by shift bits, logical.
func ExpIntRShift(value, shift *Exp) *Exp { return expCmd(expOpIntRShift, value, shift) }

// ExpIntARShift shifts value right by shift bits, arithmetic.
func ExpIntARShift(value, shift *Exp) *Exp { return expCmd(expOpIntARShift, value, shift) }

// ExpIntCount counts the set bits of an integer expression.
func ExpIntCount(exp *Exp) *Exp { return expCmd(expOpIntCount, exp) }

// ExpIntLScan returns the offset of the first bit equal to search,
// scanning from the most significant bit.
func ExpIntLScan(value, search *Exp) *Exp { return expCmd(expOpIntLScan, value, search) }

// ExpIntRScan returns the offset of the last bit equal to search.
func ExpIntRScan(value, search *Exp) *Exp { return expCmd(expOpIntRScan, value, search) }

// -----------------------------------------------------------------------------
// Control
// -----------------------------------------------------------------------------

// ExpCond evaluates condition/action pairs in order and yields the action
// of the first true condition, or the trailing default. The operand count
// must be odd.
func ExpCond(exps ...*Exp) *Exp { return expCmd(expOpCond, exps...) }

// ExpLet defines variables for a result expression: any number of ExpDef
// operands followed by one result expression.
func ExpLet(exps ...*Exp) *Exp { return expCmd(expOpLet, exps...) }

// ExpDef binds a variable inside an ExpLet.
func ExpDef(name string, value *Exp) *Exp {
	return &Exp{cmd: expCmdDef, name: name, children: []*Exp{value}}
}

// ExpVar reads a variable bound by an enclosing ExpLet.
func ExpVar(name string) *Exp {
	return &Exp{cmd: expOpVar, name: name}
}

func expCmd(cmd int, children ...*Exp) *Exp {
	return &Exp{cmd: cmd, children: children}
}

// expCall builds a typed module-call node around a packed sub-operation.
func expCall(resultType ExpType, module int64, command int, operands []any, ctx []*CDTContext, bin *Exp) *Exp {
	return &Exp{
		cmd:      expOpCall,
		expType:  resultType,
		flags:    module,
		command:  command,
		operands: operands,
		ctx:      ctx,
		children: []*Exp{bin},
	}
}

// -----------------------------------------------------------------------------
// Packing
// -----------------------------------------------------------------------------

// Bytes packs the expression tree.
func (e *Exp) Bytes(cfg *Config) ([]byte, error) {
	p := NewPacker(cfg)
	if err := e.pack(p); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

func (e *Exp) pack(p *Packer) error {
	switch e.cmd {
	case expCmdValue:
		return e.val.Pack(p)

	case expOpQuoted:
		p.PackArrayBegin(2)
		p.PackInt64(expOpQuoted)
		return e.val.Pack(p)

	case expOpBin:
		p.PackArrayBegin(3)
		p.PackInt64(expOpBin)
		p.PackInt64(int64(e.expType))
		p.PackParticleString(e.name)
		return nil

	case expOpBinType, expOpVar:
		p.PackArrayBegin(2)
		p.PackInt64(int64(e.cmd))
		p.PackParticleString(e.name)
		return nil

	case expOpKey:
		p.PackArrayBegin(2)
		p.PackInt64(expOpKey)
		p.PackInt64(int64(e.expType))
		return nil

	case expOpDigestModulo:
		p.PackArrayBegin(2)
		p.PackInt64(expOpDigestModulo)
		return e.val.Pack(p)

	case expOpRegex:
		p.PackArrayBegin(4)
		p.PackInt64(expOpRegex)
		p.PackInt64(e.flags)
		p.PackParticleString(e.name)
		return e.children[0].pack(p)

	case expCmdDef:
		p.PackArrayBegin(2)
		p.PackParticleString(e.name)
		return e.children[0].pack(p)

	case expOpCall:
		p.PackArrayBegin(5)
		p.PackInt64(expOpCall)
		p.PackInt64(int64(e.expType))
		p.PackInt64(e.flags)
		if err := packCDTCommand(p, e.command, e.ctx, 0, e.operands...); err != nil {
			return err
		}
		return e.children[0].pack(p)

	default:
		p.PackArrayBegin(len(e.children) + 1)
		p.PackInt64(int64(e.cmd))
		for _, child := range e.children {
			if err := child.pack(p); err != nil {
				return err
			}
		}
		return nil
	}
}

// -----------------------------------------------------------------------------
// Expression operations
// -----------------------------------------------------------------------------

// ExpReadFlags modify an expression read operation.
type ExpReadFlags int

const (
	// ExpReadFlagsDefault fails the operation on an evaluation error.
	ExpReadFlagsDefault ExpReadFlags = 0

	// ExpReadFlagsEvalNoFail ignores evaluation failures.
	ExpReadFlagsEvalNoFail ExpReadFlags = 16
)

// ExpWriteFlags modify an expression write operation. Flags combine
// with OR.
type ExpWriteFlags int

const (
	// ExpWriteFlagsDefault creates or updates the bin.
	ExpWriteFlagsDefault ExpWriteFlags = 0

	// ExpWriteFlagsCreateOnly fails when the bin already exists.
	ExpWriteFlagsCreateOnly ExpWriteFlags = 1

	// ExpWriteFlagsUpdateOnly fails when the bin does not exist.
	ExpWriteFlagsUpdateOnly ExpWriteFlags = 2

	// ExpWriteFlagsAllowDelete lets a nil result delete the bin.
	ExpWriteFlagsAllowDelete ExpWriteFlags = 4

	// ExpWriteFlagsPolicyNoFail turns policy violations into no-ops.
	ExpWriteFlagsPolicyNoFail ExpWriteFlags = 8

	// ExpWriteFlagsEvalNoFail ignores evaluation failures.
	ExpWriteFlagsEvalNoFail ExpWriteFlags = 16
)

// packExpOperation packs [expression, flags].
func packExpOperation(cfg *Config, exp *Exp, flags int) (Value, error) {
	p := NewPacker(cfg)
	p.PackArrayBegin(2)
	if err := exp.pack(p); err != nil {
		return nil, err
	}
	p.PackInt64(int64(flags))
	return BytesValue(p.Bytes()), nil
}

// ExpReadOp reads the result of an expression into the named pseudo-bin.
func ExpReadOp(cfg *Config, name string, exp *Exp, flags ExpReadFlags) (*Operation, error) {
	binValue, err := packExpOperation(cfg, exp, int(flags))
	if err != nil {
		return nil, err
	}
	return &Operation{OpType: OpTypeExpRead, BinName: name, BinValue: binValue}, nil
}

// ExpWriteOp writes the result of an expression to the bin.
func ExpWriteOp(cfg *Config, binName string, exp *Exp, flags ExpWriteFlags) (*Operation, error) {
	binValue, err := packExpOperation(cfg, exp, int(flags))
	if err != nil {
		return nil, err
	}
	return &Operation{OpType: OpTypeExpModify, BinName: binName, BinValue: binValue}, nil
}
