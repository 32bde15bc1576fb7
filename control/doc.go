// Package control provides the byte framing used to carry bit strings on a
// stream.
//
// Every block starts with a control byte. A prefix code in the high bits
// selects the block type and the remaining low bits carry either data or size
// information. The intention is to minimize signaling overhead and pack small
// values directly into the control byte.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks).
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                               |
//  |---------------|---------------||----------------|-----------------------------------------------|
//  | 1 |                           || Data           | 2^7 = 128 values                              |
//  | 0 . 1 |                       || Data Size      | 2^6 = 64 bytes                                |
//  | 0 . 0 . 1 |                   || Data + 1       | 2^(5+8) = 2^13 = 8192 values                  |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | 2^(4+8+8) = 2^20 = 1048576 values             |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | 2^3 = 8 bytes size; at most 2^32 bytes        |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | Null value (for nullable fields)              |
//  |---------------|---------------||----------------|-----------------------------------------------|
//
// Control bytes 0000_0001 through 0000_0111 are reserved and rejected by the
// decoder.
//
// All sizes are stored minus one to maximize their effective range. There is
// no zero length data block.
//
// Data + 1 and Data + 2 blocks continue the value bits of the control byte in
// the following one or two bytes, so the decoded data is the masked control
// byte followed by the extra bytes.
//
// Data Size Size blocks have 3 parts:
//
//  1. Number of bytes for the data size (in the control byte)
//  2. Number of bytes that contain data (big-endian)
//  3. Data
//
// The encoder always picks the smallest block able to hold the data.
package control
