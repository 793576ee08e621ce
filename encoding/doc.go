// Package encoding lays out dataset values and dataset names inside a vislog container.
//
// Values are float64 columns. Two layouts are available:
//
//   - NumericRawEncoder / NumericRawDecoder: fixed 8 bytes per value in the
//     container byte order. Random access is O(1).
//   - NumericGorillaEncoder / NumericGorillaDecoder: Facebook Gorilla XOR
//     compression (https://www.vldb.org/pvldb/vol8/p1816-teller.pdf). Sensor
//     channels that hold a value for many samples shrink to a bit per sample.
//
// Both round-trip every bit pattern, including NaN payloads, so a NaN written by
// a logger for "no reading" comes back as the same NaN.
//
// Names are stored as a length-prefixed list (EncodeNames / DecodeNames) and
// verified against the xxHash64 IDs kept in the index (VerifyNameHashes).
package encoding
