// ABOUTME: Vector BLOB encoding for SQLite storage
// ABOUTME: Fixed-width little-endian float64 serialization
package storage

import (
	"encoding/binary"
	"math"
)

// vectorToBlob encodes a float64 vector as little-endian bytes
func vectorToBlob(vector []float64) []byte {
	blob := make([]byte, len(vector)*8)
	for i, v := range vector {
		binary.LittleEndian.PutUint64(blob[i*8:], math.Float64bits(v))
	}
	return blob
}

// blobToVector decodes a little-endian byte blob back into a vector
func blobToVector(blob []byte) []float64 {
	vector := make([]float64, len(blob)/8)
	for i := range vector {
		vector[i] = math.Float64frombits(binary.LittleEndian.Uint64(blob[i*8:]))
	}
	return vector
}
