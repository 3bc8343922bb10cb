// ctx.go implements the CDT context path: an ordered selector sequence
// addressing a nested list or map inside a bin, root to leaf.
//
// Each step is a (selector id, selector value) pair. The id's low bits name
// the selector kind (list by index/rank/value, map by index/rank/key/value);
// the high bits carry create-on-demand order flags, which belong only to the
// leaf step — intermediate steps are plain lookups on the way down.
//
// A context path has a stable external representation (ToBase64/FromBase64)
// used in secondary index and query definitions, so its byte layout is a
// hard cross-implementation compatibility surface.
//
// Reference: Aerospike CDT context addressing, cdt_ctx docs.
package aswire

import "encoding/base64"

// Context step selector ids.
const (
	ctxTypeListIndex = 0x10
	ctxTypeListRank  = 0x11
	ctxTypeListValue = 0x13
	ctxTypeMapIndex  = 0x20
	ctxTypeMapRank   = 0x21
	ctxTypeMapKey    = 0x22
	ctxTypeMapValue  = 0x23
)

// CDTContext is one step of a context path.
type CDTContext struct {
	// ID is the selector id byte, including any create-order flags.
	ID int

	// Value is the selector operand: an index, a rank, a key or a value.
	Value Value
}

// CtxListIndex addresses the list item at index. Negative indices count from
// the end: -1 is the last item.
func CtxListIndex(index int) *CDTContext {
	return &CDTContext{ID: ctxTypeListIndex, Value: LongValue(index)}
}

// CtxListIndexCreate addresses the list item at index, creating enclosing
// list state on write if it does not exist. pad requests nil-padding up to
// the index for unordered lists.
func CtxListIndexCreate(index int, order ListOrder, pad bool) *CDTContext {
	return &CDTContext{ID: ctxTypeListIndex | listOrderFlag(order, pad), Value: LongValue(index)}
}

// CtxListRank addresses the list item with the given rank.
func CtxListRank(rank int) *CDTContext {
	return &CDTContext{ID: ctxTypeListRank, Value: LongValue(rank)}
}

// CtxListValue addresses the first list item equal to value.
func CtxListValue(value Value) *CDTContext {
	return &CDTContext{ID: ctxTypeListValue, Value: value}
}

// CtxMapIndex addresses the map entry at index.
func CtxMapIndex(index int) *CDTContext {
	return &CDTContext{ID: ctxTypeMapIndex, Value: LongValue(index)}
}

// CtxMapRank addresses the map entry with the given value rank.
func CtxMapRank(rank int) *CDTContext {
	return &CDTContext{ID: ctxTypeMapRank, Value: LongValue(rank)}
}

// CtxMapKey addresses the map entry with the given key.
func CtxMapKey(key Value) *CDTContext {
	return &CDTContext{ID: ctxTypeMapKey, Value: key}
}

// CtxMapKeyCreate addresses the map entry with the given key, creating it
// with the given order on write if it does not exist.
func CtxMapKeyCreate(key Value, order MapOrder) *CDTContext {
	return &CDTContext{ID: ctxTypeMapKey | mapOrderFlag(order, false), Value: key}
}

// CtxMapValue addresses the first map entry with the given value.
func CtxMapValue(value Value) *CDTContext {
	return &CDTContext{ID: ctxTypeMapValue, Value: value}
}

// listOrderFlag returns the create-order flag byte for a list context or
// create operation. ORDERED wins over pad.
func listOrderFlag(order ListOrder, pad bool) int {
	if order == ListOrderOrdered {
		return 0xc0
	}
	if pad {
		return 0x80
	}
	return 0x40
}

// mapOrderFlag returns the create-order flag byte for a map context or
// create operation.
func mapOrderFlag(order MapOrder, persistIndex bool) int {
	var flag int
	switch order {
	case MapOrderKeyOrdered:
		flag = 0x80
	case MapOrderKeyValueOrdered:
		flag = 0xc0
	default:
		flag = 0x40
	}
	if persistIndex {
		flag |= 0x10
	}
	return flag
}

// CTXToBytes serializes a context path as a flat MessagePack array of
// alternating (id, value) pairs.
func CTXToBytes(cfg *Config, ctx []*CDTContext) ([]byte, error) {
	p := NewPacker(cfg)
	p.PackArrayBegin(len(ctx) * 2)
	for _, c := range ctx {
		p.PackInt64(int64(c.ID))
		if err := c.Value.Pack(p); err != nil {
			return nil, err
		}
	}
	return p.Bytes(), nil
}

// CTXFromBytes reconstructs a context path serialized by CTXToBytes.
// Selector ids round-trip exactly; small integer selector values widen to
// 64 bits.
func CTXFromBytes(cfg *Config, data []byte) ([]*CDTContext, error) {
	items, err := NewUnpacker(cfg, data).UnpackList()
	if err != nil {
		return nil, err
	}
	if len(items)%2 != 0 {
		return nil, newError(ResultParseError, "list count must be even")
	}

	ctx := make([]*CDTContext, 0, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		id, ok := items[i].(int64)
		if !ok {
			return nil, newErrorf(ResultParseError, "context selector id is %T, expected integer", items[i])
		}
		ctx = append(ctx, &CDTContext{ID: int(id), Value: NewValue(items[i+1])})
	}
	return ctx, nil
}

// CTXToBase64 returns the stable external representation of a context path.
func CTXToBase64(cfg *Config, ctx []*CDTContext) (string, error) {
	data, err := CTXToBytes(cfg, ctx)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// CTXFromBase64 reconstructs a context path from its external representation.
func CTXFromBase64(cfg *Config, s string) ([]*CDTContext, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, wrapError(ResultParseError, err, "decoding base64 context")
	}
	return CTXFromBytes(cfg, data)
}
