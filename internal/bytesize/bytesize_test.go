package bytesize

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    ByteSize
		wantErr bool
	}{
		{"0", 0, false},
		{"1024", 1024, false},
		{"1024B", 1024, false},
		{"64KiB", 64 * KiB, false},
		{"64ki", 64 * KiB, false},
		{"16MiB", 16 * MiB, false},
		{"16 Mi", 16 * MiB, false},
		{"1GiB", GiB, false},
		{"2K", 2000, false},
		{"2MB", 2 * MB, false},
		{"  1gb ", GB, false},
		{"1.5Mi", ByteSize(1.5 * float64(MiB)), false},

		{"", 0, true},
		{"   ", 0, true},
		{"MiB", 0, true},
		{"abc", 0, true},
		{"-1", 0, true},
		{"1XB", 0, true},
		{"inf", 0, true},
		{"NaN", 0, true},
		{"18446744073709551615KiB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestByteSize_TextRoundTrip(t *testing.T) {
	for _, size := range []ByteSize{0, 100, 64 * KiB, 16 * MiB, 3 * GiB, MiB + 1} {
		text, err := size.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d) error = %v", size, err)
		}
		var got ByteSize
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if got != size {
			t.Errorf("round trip of %d via %q = %d", size, text, got)
		}
	}
}

func TestByteSize_String(t *testing.T) {
	tests := []struct {
		size ByteSize
		want string
	}{
		{0, "0B"},
		{512, "512B"},
		{KiB, "1.00KiB"},
		{1536, "1.50KiB"},
		{16 * MiB, "16.00MiB"},
		{2 * GiB, "2.00GiB"},
	}
	for _, tt := range tests {
		if got := tt.size.String(); got != tt.want {
			t.Errorf("ByteSize(%d).String() = %q, want %q", tt.size, got, tt.want)
		}
	}
}
