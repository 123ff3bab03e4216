package compress

// ZstdCompressor provides Zstandard compression optimized for already
// bit-packed day payloads.
//
// This compressor favors compression ratio over speed, making it suited to:
//   - Cold storage and archival of day containers
//   - Long-term retention of historical intraday data
//   - Network transmission where bandwidth is limited
//   - Scenarios where decompression happens infrequently
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
