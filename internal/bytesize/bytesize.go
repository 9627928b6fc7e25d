// Package bytesize parses input size limits such as "16MiB" or "512K".
package bytesize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ByteSize is a size in bytes.
type ByteSize uint64

const (
	B   ByteSize = 1
	KiB ByteSize = 1 << 10
	MiB ByteSize = 1 << 20
	GiB ByteSize = 1 << 30

	KB ByteSize = 1000
	MB ByteSize = 1000 * KB
	GB ByteSize = 1000 * MB
)

// Suffixes are matched case-insensitively. Longer suffixes come first so
// "kib" wins over "b".
var suffixes = []struct {
	unit string
	mult ByteSize
}{
	{"kib", KiB}, {"mib", MiB}, {"gib", GiB},
	{"ki", KiB}, {"mi", MiB}, {"gi", GiB},
	{"kb", KB}, {"mb", MB}, {"gb", GB},
	{"k", KB}, {"m", MB}, {"g", GB},
	{"b", B},
}

// Parse reads a size such as "1024", "64KiB", "1.5Mi" or "2MB".
func Parse(s string) (ByteSize, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	if str == "" {
		return 0, fmt.Errorf("empty byte size")
	}

	mult := B
	for _, sfx := range suffixes {
		if strings.HasSuffix(str, sfx.unit) {
			mult = sfx.mult
			str = strings.TrimSpace(strings.TrimSuffix(str, sfx.unit))
			break
		}
	}

	if n, err := strconv.ParseUint(str, 10, 64); err == nil {
		if n > uint64(^ByteSize(0)/mult) {
			return 0, fmt.Errorf("byte size %q overflows", s)
		}
		return ByteSize(n) * mult, nil
	}

	f, err := strconv.ParseFloat(str, 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid byte size %q", s)
	}
	return ByteSize(f * float64(mult)), nil
}

// UnmarshalText lets ByteSize be read from YAML and environment strings.
func (b *ByteSize) UnmarshalText(text []byte) error {
	size, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = size
	return nil
}

// MarshalText writes the size in the largest binary unit that divides it
// exactly, so a saved value parses back unchanged.
func (b ByteSize) MarshalText() ([]byte, error) {
	return []byte(b.exact()), nil
}

func (b ByteSize) exact() string {
	switch {
	case b == 0:
		return "0"
	case b%GiB == 0:
		return strconv.FormatUint(uint64(b/GiB), 10) + "GiB"
	case b%MiB == 0:
		return strconv.FormatUint(uint64(b/MiB), 10) + "MiB"
	case b%KiB == 0:
		return strconv.FormatUint(uint64(b/KiB), 10) + "KiB"
	default:
		return strconv.FormatUint(uint64(b), 10)
	}
}

// String returns a rounded human-readable size.
func (b ByteSize) String() string {
	switch {
	case b >= GiB:
		return fmt.Sprintf("%.2fGiB", float64(b)/float64(GiB))
	case b >= MiB:
		return fmt.Sprintf("%.2fMiB", float64(b)/float64(MiB))
	case b >= KiB:
		return fmt.Sprintf("%.2fKiB", float64(b)/float64(KiB))
	default:
		return fmt.Sprintf("%dB", uint64(b))
	}
}
