package replay

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/SanoKhan22/CricketAR-sub000/cerror"
)

func writeLInt64(buf *bytes.Buffer, v int64) {
	binary.Write(buf, binary.LittleEndian, v)
}

func writeLFloat32(buf *bytes.Buffer, v float32) {
	binary.Write(buf, binary.LittleEndian, v)
}

func writeLInt32(buf *bytes.Buffer, v int32) {
	binary.Write(buf, binary.LittleEndian, v)
}

func writeBool(buf *bytes.Buffer, v bool) {
	if v {
		buf.WriteByte(1)
		return
	}
	buf.WriteByte(0)
}

func writeString(buf *bytes.Buffer, s string) {
	binary.Write(buf, binary.LittleEndian, uint16(len(s)))
	buf.WriteString(s)
}

func readLInt64(buf *bytes.Buffer) (int64, error) {
	b := buf.Next(8)
	if len(b) != 8 {
		return 0, cerror.New("replay stream truncated reading int64")
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

func readLFloat32(buf *bytes.Buffer) (float32, error) {
	b := buf.Next(4)
	if len(b) != 4 {
		return 0, cerror.New("replay stream truncated reading float32")
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

func readLInt32(buf *bytes.Buffer) (int32, error) {
	b := buf.Next(4)
	if len(b) != 4 {
		return 0, cerror.New("replay stream truncated reading int32")
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func readBool(buf *bytes.Buffer) (bool, error) {
	b, err := buf.ReadByte()
	if err != nil {
		return false, cerror.New("replay stream truncated reading bool")
	}
	return b == 1, nil
}

func readString(buf *bytes.Buffer) (string, error) {
	lb := buf.Next(2)
	if len(lb) != 2 {
		return "", cerror.New("replay stream truncated reading string length")
	}
	l := int(binary.LittleEndian.Uint16(lb))
	sb := buf.Next(l)
	if len(sb) != l {
		return "", cerror.New("replay stream truncated reading string body")
	}
	return string(sb), nil
}
