package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retroforge/typein/pkgs/convert"
)

func TestWriteChecksumFile(t *testing.T) {
	tests := []struct {
		name    string
		records []convert.Record
		want    string
	}{
		{
			name:    "single record",
			records: []convert.Record{{Number: 11110, Code: "AP"}},
			want:    "11110 AP\n\nLines: 1\n",
		},
		{
			name: "full listing",
			records: []convert.Record{
				{Number: 10, Code: "HE"}, {Number: 20, Code: "PH"}, {Number: 30, Code: "IM"}, {Number: 40, Code: "CD"}, {Number: 50, Code: "OB"},
				{Number: 60, Code: "OF"}, {Number: 70, Code: "OG"}, {Number: 80, Code: "NI"}, {Number: 90, Code: "DG"}, {Number: 100, Code: "IC"},
				{Number: 64000, Code: "KK"},
			},
			want: "10 HE\n20 PH\n30 IM\n40 CD\n50 OB\n60 OF\n70 OG\n80 NI\n90 DG\n" +
				"100 IC\n64000 KK\n\nLines: 11\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "output.chk")
			require.NoError(t, WriteChecksumFile(path, tt.records))

			contents, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(contents))
		})
	}
}

func TestWriteBinaryNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.prg")
	image := []byte{0x01, 0x08, 0x00, 0x00}

	require.NoError(t, WriteBinary(path, image, nil))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, image, contents)
}

func TestWriteBinaryOverwriteDeclined(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.prg")
	require.NoError(t, os.WriteFile(path, []byte{0xff}, 0o644))

	declined := false
	err := WriteBinary(path, []byte{0x01, 0x08}, func(string) bool {
		declined = true
		return false
	})
	require.NoError(t, err)
	assert.True(t, declined, "confirm callback not invoked")

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff}, contents, "existing file must be untouched")
}

func TestWriteBinaryOverwriteAccepted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.prg")
	require.NoError(t, os.WriteFile(path, []byte{0xff}, 0o644))

	image := []byte{0x01, 0x08}
	require.NoError(t, WriteBinary(path, image, func(string) bool { return true }))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, image, contents)
}

func TestWriteBinaryNilConfirmOverwrites(t *testing.T) {
	// watch mode rewrites outputs without prompting
	path := filepath.Join(t.TempDir(), "output.prg")
	require.NoError(t, os.WriteFile(path, []byte{0xff}, 0o644))

	image := []byte{0x01, 0x08}
	require.NoError(t, WriteBinary(path, image, nil))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, image, contents)
}

func TestConvertFileWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "hello.ahoy")
	listing := "10 print\"hello\"\n20 goto10\n"
	require.NoError(t, os.WriteFile(input, []byte(listing), 0o644))

	opts := convert.Options{Variant: 2, LoadAddr: 0x0801}
	require.NoError(t, convertFile(input, opts, nil))

	prg, err := os.ReadFile(filepath.Join(dir, "hello.prg"))
	require.NoError(t, err)
	want := []byte{
		0x01, 0x08,
		0x0e, 0x08, 0x0a, 0x00, 0x99, '"', 'H', 'E', 'L', 'L', 'O', '"', 0x00,
		0x16, 0x08, 0x14, 0x00, 0x89, '1', '0', 0x00,
		0x00, 0x00,
	}
	assert.Equal(t, want, prg)

	chk, err := os.ReadFile(filepath.Join(dir, "hello.chk"))
	require.NoError(t, err)
	assert.Equal(t, "10 EO\n20 PH\n\nLines: 2\n", string(chk))
}

func TestParseLoadAddr(t *testing.T) {
	tests := []struct {
		in      string
		want    uint16
		wantErr bool
	}{
		{"0x0801", 0x0801, false},
		{"0x1001", 0x1001, false},
		{"0X0401", 0x0401, false},
		{"1201", 0x1201, false},
		{"0x10000", 0, true},
		{"basic", 0, true},
	}

	for _, tt := range tests {
		got, err := parseLoadAddr(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "parseLoadAddr(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "parseLoadAddr(%q)", tt.in)
		assert.Equal(t, tt.want, got, "parseLoadAddr(%q)", tt.in)
	}
}

func TestWithFormatSuggestion(t *testing.T) {
	base := assert.AnError
	err := withFormatSuggestion(base, "ahoy")
	assert.ErrorIs(t, err, base)
	assert.Regexp(t, `did you mean "ahoy[123]"\?`, err.Error())

	// nothing close: the error passes through untouched
	assert.Same(t, base, withFormatSuggestion(base, "zzz"))
}
