package listing

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/retroforge/typein/pkgs/errors"
)

func TestSplitLineNumber(t *testing.T) {
	tests := []struct {
		line string
		want SourceLine
	}{
		{`10 print"hello!"`, SourceLine{10, `print"hello!"`}},
		{"20   goto10", SourceLine{20, "goto10"}},
		{"30{wh}val = 3.2*num", SourceLine{30, "{wh}val = 3.2*num"}},
		{"  40 indented", SourceLine{40, "indented"}},
		{"64000 last", SourceLine{64000, "last"}},
	}

	for _, tt := range tests {
		got, ok := SplitLineNumber(tt.line)
		if !ok {
			t.Errorf("SplitLineNumber(%q) not ok", tt.line)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("SplitLineNumber(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestSplitLineNumberMissing(t *testing.T) {
	for _, line := range []string{"goto10", "  rem no number", ""} {
		if _, ok := SplitLineNumber(line); ok {
			t.Errorf("SplitLineNumber(%q) ok, want missing", line)
		}
	}
}

func TestSequenceAccepts(t *testing.T) {
	tests := [][]string{
		{"10 OK", "20 OK", "30 OK", "40 OK"},
		{"10 OK", "20 OK"},
		{"10 OK"},
		{},
	}

	for _, lines := range tests {
		if _, err := Sequence(lines); err != nil {
			t.Errorf("Sequence(%v) = %v, want nil", lines, err)
		}
	}
}

func TestSequenceRejects(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		errType  string
		wantLine int
	}{
		{
			name:     "lower number after two good lines",
			lines:    []string{"10 OK", "20 OK", "5 OFF", "40 OK"},
			errType:  errors.ErrLineSequence,
			wantLine: 20,
		},
		{
			name:     "overshoot reported at the overshooting line",
			lines:    []string{"10 OK", "200 OFF", "30 OK", "40 OK"},
			errType:  errors.ErrLineSequence,
			wantLine: 200,
		},
		{
			name:     "only the first violation is reported",
			lines:    []string{"10 OK", "200 OFF", "3 OFF", "40 OK"},
			errType:  errors.ErrLineSequence,
			wantLine: 200,
		},
		{
			name:     "first line overshoots",
			lines:    []string{"100 OFF", "20 OK", "30 OK", "40 OK"},
			errType:  errors.ErrLineSequence,
			wantLine: 100,
		},
		{
			name:     "duplicate line number",
			lines:    []string{"20 OK", "10 ON"},
			errType:  errors.ErrLineSequence,
			wantLine: 20,
		},
		{
			name:     "line zero is never valid",
			lines:    []string{"0 first"},
			errType:  errors.ErrLineSequence,
			wantLine: 0,
		},
		{
			name:     "missing number cites prior line",
			lines:    []string{"10 OK", "OFF", "30 OK", "40 OK"},
			errType:  errors.ErrMissingLineNumber,
			wantLine: 10,
		},
		{
			name:     "missing number on first line cites zero",
			lines:    []string{"OFF", "20OK", "30 ON", "40 OK"},
			errType:  errors.ErrMissingLineNumber,
			wantLine: 0,
		},
		{
			name:     "number may touch its text",
			lines:    []string{"20OK", "ON"},
			errType:  errors.ErrMissingLineNumber,
			wantLine: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sequence(tt.lines)
			if err == nil {
				t.Fatalf("Sequence(%v) = nil, want %s", tt.lines, tt.errType)
			}
			if !errors.IsErrorType(err, tt.errType) {
				t.Fatalf("Sequence(%v) = %v, want type %s", tt.lines, err, tt.errType)
			}
			line, ok := errors.Line(err)
			if !ok || line != tt.wantLine {
				t.Errorf("error line = %d (ok=%t), want %d", line, ok, tt.wantLine)
			}
		})
	}
}
