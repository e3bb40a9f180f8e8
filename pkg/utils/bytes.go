package utils

import "encoding/binary"

func Int64ToByteArray(input []int64) []byte {
	allBytes := make([]byte, 0, len(input)*8)
	numberInBytes := make([]byte, 8)
	for _, number := range input {
		binary.LittleEndian.PutUint64(numberInBytes, uint64(number))
		allBytes = append(allBytes, numberInBytes...)
	}
	return allBytes
}
