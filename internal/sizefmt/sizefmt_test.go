package sizefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{-5, "0 Bytes"},
		{1, "1 Bytes"},
		{512, "512 Bytes"},
		{1023, "1023 Bytes"},
		{1024, "1 KB"},
		{1536, "2 KB"}, // 1.5 KB rounds up
		{1_000_000, "977 KB"},
		{1048576, "1 MB"},
		{5 * 1048576, "5 MB"},
		{3 << 30, "3 GB"},
		{5 << 40, "5120 GB"}, // GB is the largest unit
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Format(tc.bytes), "Format(%d)", tc.bytes)
	}
}
