package loader

import (
	"encoding/binary"

	"github.com/gogpu/typeface"
)

// sfnt container layout: a 12-byte header (sfnt version, numTables,
// searchRange, entrySelector, rangeShift) followed by 16-byte table
// directory entries (tag, checksum, offset, length).
const (
	sfntHeaderSize = 12
	sfntEntrySize  = 16
)

// os2Tag is the "OS/2" table tag.
const os2Tag = 0x4F532F32

// fsSelection bits of the OS/2 table.
const (
	fsSelectionItalic = 1 << 0
	fsSelectionBold   = 1 << 5
)

// OS/2 field offsets. usWeightClass follows version and
// xAvgCharWidth; fsSelection sits past the panose and Unicode range
// blocks. See the OpenType OS/2 table layout.
const (
	os2WeightClassOffset = 4
	os2FsSelectionOffset = 62
	os2MinLength         = 64
)

// styleFromOS2 reads the declared weight and slant straight from the
// font's OS/2 table. Returns ok=false when the table is missing or
// truncated; callers fall back to a backend-specific heuristic.
func styleFromOS2(data []byte) (typeface.FontStyle, bool) {
	table, ok := rawTable(data, os2Tag)
	if !ok || len(table) < os2MinLength {
		return typeface.FontStyle{}, false
	}
	weight := int(binary.BigEndian.Uint16(table[os2WeightClassOffset:]))
	if weight == 0 {
		// Some fonts leave usWeightClass unset; treat as regular.
		weight = typeface.NormalWeight
	}
	sel := binary.BigEndian.Uint16(table[os2FsSelectionOffset:])
	slant := typeface.SlantUpright
	if sel&fsSelectionItalic != 0 {
		slant = typeface.SlantItalic
	}
	return typeface.NewFontStyle(weight, slant), true
}

// rawTable locates a top-level sfnt table by tag.
// It performs no parsing beyond the table directory, so it works on
// any TTF/OTF blob without fully loading the font.
func rawTable(data []byte, tag uint32) ([]byte, bool) {
	if len(data) < sfntHeaderSize {
		return nil, false
	}
	numTables := int(binary.BigEndian.Uint16(data[4:]))
	dirEnd := sfntHeaderSize + numTables*sfntEntrySize
	if len(data) < dirEnd {
		return nil, false
	}
	for i := 0; i < numTables; i++ {
		entry := data[sfntHeaderSize+i*sfntEntrySize : sfntHeaderSize+(i+1)*sfntEntrySize]
		if binary.BigEndian.Uint32(entry) != tag {
			continue
		}
		offset := uint64(binary.BigEndian.Uint32(entry[8:]))
		length := uint64(binary.BigEndian.Uint32(entry[12:]))
		if offset+length > uint64(len(data)) {
			return nil, false
		}
		return data[offset : offset+length], true
	}
	return nil, false
}
