package collections

import (
	"fmt"
	"strconv"

	"github.com/fxamacker/cbor/v2"
)

// The persisted form is a keyed record: entry i is stored under the key
// "object.<i>", contiguous from 0. Decoding reads keys sequentially
// until the first missing one and fails as a whole if any entry fails
// to decode.

const archiveKeyPrefix = "object."

func archiveKey(i int) string {
	return archiveKeyPrefix + strconv.Itoa(i)
}

// MarshalKeyed encodes s in the keyed archive form.
func MarshalKeyed[V any](s OrderedSet[V]) ([]byte, error) {
	record := make(map[string]cbor.RawMessage, s.Size())
	for i, v := range s.Entries() {
		enc, err := cbor.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode entry %d: %w", i, err)
		}
		record[archiveKey(i)] = enc
	}
	return cbor.Marshal(record)
}

// UnmarshalKeyed decodes a keyed archive into a fresh mutable ordered
// set. It yields no object on any failure: a payload that is not a
// keyed record, an entry that fails to decode, or keys left over after
// the contiguous scan.
func UnmarshalKeyed[R comparable, V any](data []byte, f HashFunc[R, V]) (MutableOrderedSet[V], error) {
	var record map[string]cbor.RawMessage
	if err := cbor.Unmarshal(data, &record); err != nil {
		var list []cbor.RawMessage
		if cbor.Unmarshal(data, &list) == nil {
			return nil, ErrNonKeyedArchive
		}
		return nil, fmt.Errorf("decode archive: %w", err)
	}
	s := NewMutableOrderedSet(f)
	consumed := 0
	for i := 0; ; i++ {
		raw, ok := record[archiveKey(i)]
		if !ok {
			break
		}
		var v V
		if err := cbor.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode entry %d: %w", i, err)
		}
		s.Add(v)
		consumed++
	}
	if consumed != len(record) {
		return nil, fmt.Errorf("%w: %d of %d keys consumed", ErrMalformedArchive, consumed, len(record))
	}
	return s, nil
}
