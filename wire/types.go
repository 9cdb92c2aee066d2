package wire

// ByteArray is a raw byte sequence used throughout the protocol.
type ByteArray = []byte
