package ar

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Intel HEX record types.
const (
	hexData                  = 0x00
	hexEndOfFile             = 0x01
	hexExtendedLinearAddress = 0x04
)

// hexRecordSize is the number of data bytes per record.
const hexRecordSize = 16

// WriteHex writes the machine code to w in Intel HEX format, as accepted by
// most flashing tools. Addresses past 64 KiB are announced with extended
// linear address records.
func (a *Archive) WriteHex(w io.Writer) error {
	bw := bufio.NewWriter(w)
	segment := -1

	for addr := 0; addr < len(a.Code); addr += hexRecordSize {
		end := addr + hexRecordSize
		if end > len(a.Code) {
			end = len(a.Code)
		}

		// Records never straddle a 64 KiB boundary since the record size divides it.
		if upper := addr >> 16; upper != segment {
			segment = upper
			writeHexRecord(bw, hexExtendedLinearAddress, 0, []byte{byte(upper >> 8), byte(upper)})
		}

		writeHexRecord(bw, hexData, uint16(addr), a.Code[addr:end])
	}

	writeHexRecord(bw, hexEndOfFile, 0, nil)
	return errors.Wrapf(bw.Flush(), "ar")
}

// writeHexRecord writes one record. Errors are reported by the final Flush.
func writeHexRecord(w *bufio.Writer, kind byte, addr uint16, data []byte) {
	record := make([]byte, 0, len(data)+5)
	record = append(record, byte(len(data)), byte(addr>>8), byte(addr), kind)
	record = append(record, data...)
	record = append(record, hexChecksum(record))

	w.WriteByte(':')
	for _, b := range record {
		fmt.Fprintf(w, "%02X", b)
	}
	w.WriteByte('\n')
}

// hexChecksum returns the two's complement of the byte sum of the record.
func hexChecksum(record []byte) byte {
	var sum byte
	for _, b := range record {
		sum += b
	}
	return -sum
}
