package segcache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"

	"captionseg/internal/captions"
)

// Key digests everything that influences a re-segmentation run: the raw
// transcript bytes, the corrected text, the language, and the limits. Fields
// are length-prefixed so adjacent values cannot collide.
func Key(transcriptJSON []byte, correctedText, lang string, limits captions.Limits) string {
	h := sha256.New()
	writeField(h, transcriptJSON)
	writeField(h, []byte(correctedText))
	writeField(h, []byte(lang))

	var buf [48]byte
	binary.BigEndian.PutUint64(buf[0:], uint64(limits.MaxCharsPerLine))
	binary.BigEndian.PutUint64(buf[8:], floatBits(limits.MaxCharsPerSecond))
	binary.BigEndian.PutUint64(buf[16:], floatBits(limits.MinDuration))
	binary.BigEndian.PutUint64(buf[24:], floatBits(limits.MaxDuration))
	binary.BigEndian.PutUint64(buf[32:], uint64(limits.MinChars))
	binary.BigEndian.PutUint64(buf[40:], floatBits(limits.PauseThreshold))
	writeField(h, buf[:])

	return hex.EncodeToString(h.Sum(nil))
}

func floatBits(f float64) uint64 {
	return math.Float64bits(f)
}

func writeField(h interface{ Write(p []byte) (int, error) }, data []byte) {
	var size [8]byte
	binary.BigEndian.PutUint64(size[:], uint64(len(data)))
	h.Write(size[:])
	h.Write(data)
}
