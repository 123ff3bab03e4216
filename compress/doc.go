// Package compress provides compression and decompression codecs for
// already bit-packed container day payloads.
//
// This package offers multiple general-purpose compression algorithms
// applied as an optional second stage, after a day's offsets have already
// been through block-delta coding, bit-packing, and varint tail coding.
//
// # Overview
//
// The container's compression strategy has two stages:
//
//  1. **Encoding**: block delta + bit-pack + varint exploit the structure of
//     sorted intraday offsets (see the block and internal/bitpack packages)
//  2. **Compression**: this package's optional second stage squeezes the
//     already-dense encoded bytes further using a general-purpose algorithm
//
// The compress package implements the second stage, supporting:
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp Compression** (format.CompressionNone)
//
//	codec := compress.NewNoOpCompressor()
//	compressed, _ := codec.Compress(data)   // Returns data unchanged
//	original, _ := codec.Decompress(compressed)  // Returns data unchanged
//
// Use when:
//   - The encoded day is already small and well-packed
//   - CPU is more critical than storage
//
// **Zstandard (Zstd)** (format.CompressionZstd)
//
//	codec := compress.NewZstdCompressor()
//	compressed, _ := codec.Compress(data)
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: best ratio of the three, moderate speed
//   - Memory: a few MB for the encoder, under 1MB for the decoder
//
// Best for cold storage / archival containers written once and read rarely.
//
// **S2 (Snappy Alternative)** (format.CompressionS2)
//
//	codec := compress.NewS2Compressor()
//	compressed, _ := codec.Compress(data)
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: good, well below Zstd's CPU cost
//   - Memory: a few hundred KB
//
// Best for containers written under latency pressure, e.g. end-of-day
// ingestion jobs.
//
// **LZ4** (format.CompressionLZ4)
//
//	codec := compress.NewLZ4Compressor()
//	compressed, _ := codec.Compress(data)
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: moderate, very fast to decompress
//   - Memory: tens of KB
//
// Best for query-heavy workloads where decompression, not compression,
// dominates the hot path.
//
// # Algorithm Selection Guide
//
// | Workload             | Recommended | Reason                         |
// |----------------------|-------------|---------------------------------|
// | Cold storage          | Zstd        | Maximize space savings          |
// | End-of-day ingestion   | S2          | Balanced speed and compression  |
// | Query-heavy reads      | LZ4         | Fastest decompression           |
// | CPU-constrained        | None        | No compression overhead         |
//
// # Memory Management
//
// Codec implementations reuse buffer pools where the underlying library
// supports it (internal/pool.ByteBuffer for the container's own staging
// buffers; klauspost/compress and pierrec/lz4 manage their own internal
// encoder/decoder state).
//
// # Thread Safety
//
// A Codec returned by CreateCodec is safe to share across goroutines if the
// underlying compressor is (the zstd and s2 codecs are; the lz4 codec pools
// a stateful compressor and synchronizes access — see lz4.go).
//
// # Error Handling
//
// Compression errors are rare: input too large for the algorithm, or
// allocation failure. Decompression errors are more common and generally
// mean the payload is corrupt: bad magic/frame header, truncated stream, or
// checksum mismatch (algorithm-dependent). Zstd decompression errors are
// wrapped with a "zstd decompression failed" prefix; the S2 and LZ4 codecs
// return the underlying library's error unwrapped.
package compress
