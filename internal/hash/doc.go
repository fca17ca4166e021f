// Package hash provides the checksum used by snapshot files.
//
// All checksums use CRC32-Castagnoli (CRC32C), which Go's crc32 package
// computes with SSE4.2 or the ARM CRC extension when available.
//
//	checksum := hash.CRC32C(data)
//
// For streaming checksums:
//
//	h := hash.NewCRC32C()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	checksum := h.Sum32()
package hash
