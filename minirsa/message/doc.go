// Package message converts byte messages to and from payload integers that
// fit one padding carrier.
//
// A frame is a kind byte followed by the body:
//   - 0x01: body is the message as is
//   - 0x02: body is an LZ4 frame of the message
//
// The kind byte is never zero, so reading the frame as a big-endian integer
// keeps any leading zero bytes of the body. LZ4 is used only when it makes the
// frame shorter, which lets repetitive messages exceed the raw capacity of a
// carrier. Messages that do not fit a single carrier are rejected; there is
// no chunking.
package message
