package utils

import "testing"

func Test_checksum_is_stable_for_equal_sequences(t *testing.T) {
	first := CreateChecksum([]int64{-2, 1, -3, 4})
	second := CreateChecksum([]int64{-2, 1, -3, 4})
	if first != second {
		t.Error("expected equal checksums for equal sequences")
	}
	if len(first) != 40 {
		t.Error("expected a hex encoded sha1 digest, received: ", first)
	}
}

func Test_checksum_differs_for_different_sequences(t *testing.T) {
	if CreateChecksum([]int64{1, 2, 3}) == CreateChecksum([]int64{3, 2, 1}) {
		t.Error("expected different checksums for reordered sequences")
	}
}

func Test_int64_bytes_are_little_endian(t *testing.T) {
	bytes := Int64ToByteArray([]int64{1, -1})
	if len(bytes) != 16 {
		t.Error("expected 16 bytes, received: ", len(bytes))
		t.FailNow()
	}
	if bytes[0] != 1 || bytes[7] != 0 {
		t.Error("expected little endian encoding of 1, received: ", bytes[:8])
	}
	for _, b := range bytes[8:] {
		if b != 0xff {
			t.Error("expected two's complement encoding of -1, received: ", bytes[8:])
			t.FailNow()
		}
	}
}
