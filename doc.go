/*
Package aswire provides a pure-Go wire codec and operation builder for the
Aerospike record protocol.

aswire implements the MessagePack-derived binary format Aerospike uses for
bin values, nested-collection context paths, and list/map/bit/HyperLogLog
sub-operations, plus the filter-expression tree, record key digest, and
outer message frame. It produces and consumes byte buffers only; network
transport, cluster management, and retry policy belong to the consuming
client layer.

# Usage

For runnable examples, see the repository's examples directory. The
examples are written against the public API and are kept up-to-date as the
API evolves.

# Concurrency

Every builder and codec call is a pure, synchronous transform over its own
arguments and a caller-supplied Config. There is no shared mutable state;
concurrent callers need no locking as long as they do not mutate a value's
underlying collection during a call.

# Compatibility

Byte output is intended to match the Aerospike server's documented CDT
command format exactly: opcode values, operand arities, and flag bit
positions. Context paths additionally round-trip through the base64 form
used by cross-language index and query definitions.

Reference: Aerospike wire protocol; msgpack spec (old style).
*/
package aswire
