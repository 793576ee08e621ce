// Package section defines the fixed-size binary structures of a vislog container.
//
// A container is laid out as:
//
//	┌──────────────────────────────────────────────┐
//	│ Header (32 bytes)                            │
//	│  - Flag (4 bytes): options, version          │
//	│  - DatasetCount, IndexOffset, NamesOffset    │
//	│  - PayloadOffset, CreatedAt                  │
//	├──────────────────────────────────────────────┤
//	│ Index (32 bytes x DatasetCount)              │
//	├──────────────────────────────────────────────┤
//	│ Names payload                                │
//	│  - dataset names, then event names           │
//	├──────────────────────────────────────────────┤
//	│ Dataset payloads, back to back in index order│
//	└──────────────────────────────────────────────┘
//
// The first two bytes of the header are always little-endian so the byte order of
// the remaining sections can be detected before anything else is decoded.
package section
