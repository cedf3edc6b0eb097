package media

import (
	"bytes"
	"testing"
)

func TestDecodeHexDump(t *testing.T) {
	tests := []struct {
		name string
		dump string
		size int
		want []byte
	}{
		{
			name: "short line",
			dump: "\n00000000: 4865 6c6c 6f                             Hello\n",
			size: 5,
			want: []byte("Hello"),
		},
		{
			name: "full line",
			dump: "\n00000000: 4865 6c6c 6f2c 2077 6f72 6c64 2121 210a Hello, world!!!.\n",
			size: 16,
			want: []byte("Hello, world!!!\n"),
		},
		{
			name: "two lines",
			dump: "\n00000000: 3c69 3e48 656c 6c6f 2c20 776f 726c 6421 <i>Hello, world!\n" +
				"00000010: 3c2f 693e                                </i>\n",
			size: 20,
			want: []byte("<i>Hello, world!</i>"),
		},
		{
			name: "empty payload",
			dump: "",
			size: 0,
			want: []byte{},
		},
		{
			// the gutter renders printable bytes verbatim, so it can
			// look like more hex; the size bounds what is consumed
			name: "hex-looking gutter",
			dump: "\n00000000: 6465 6164 6265 6566                      deadbeef\n",
			size: 8,
			want: []byte("deadbeef"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeHexDump(tt.dump, tt.size)
			if err != nil {
				t.Fatalf("decodeHexDump failed: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeHexDumpErrors(t *testing.T) {
	tests := []struct {
		name string
		dump string
		size int
	}{
		{"missing offset", "\n4865 6c6c 6f\n", 5},
		{"truncated line", "\n00000000: 4865\n", 5},
		{"garbage in hex area", "\n00000000: 48zz 6c6c 6f\n", 5},
		{"size larger than dump", "\n00000000: 4865 6c6c 6f   Hello\n", 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeHexDump(tt.dump, tt.size); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
