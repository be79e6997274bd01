package wind

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Pattern
		wantErr bool
	}{
		{"single left", "<", Pattern{Left}, false},
		{"single right", ">", Pattern{Right}, false},
		{"mixed", "><<>", Pattern{Right, Left, Left, Right}, false},
		{"trailing newline", "<>\n", nil, true},
		{"letter", "<x>", nil, true},
		{"space", "< >", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got.String() != tt.want.String() {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("")
	if !errors.Is(err, ErrEmptyPattern) {
		t.Errorf("Expected ErrEmptyPattern, got %v", err)
	}
}

func TestParse_SyntaxErrorOffset(t *testing.T) {
	_, err := Parse("<<>?>")

	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("Expected *SyntaxError, got %T (%v)", err, err)
	}
	if syntaxErr.Offset != 3 || syntaxErr.Char != '?' {
		t.Errorf("Expected offset 3 char '?', got offset %d char %q", syntaxErr.Offset, syntaxErr.Char)
	}
	if !strings.Contains(err.Error(), "offset 3") {
		t.Errorf("Error message should name the offset: %v", err)
	}
}

func TestPattern_RoundTripString(t *testing.T) {
	const example = ">>><<><>><<<>><>>><<<>>><<<><<<>><>><<>>"
	if got := MustParse(example).String(); got != example {
		t.Errorf("String() = %q, want %q", got, example)
	}
}

func TestPattern_Repeat(t *testing.T) {
	p := MustParse("<>>").Repeat(3)
	if got := p.String(); got != "<>><>><>>" {
		t.Errorf("Repeat(3) = %q", got)
	}
}

func TestCursor_Wraps(t *testing.T) {
	c := NewCursor(MustParse("<>>"))

	want := []Pulse{Left, Right, Right, Left, Right}
	for i, w := range want {
		if c.Peek() != w {
			t.Errorf("step %d: Peek = %v, want %v", i, c.Peek(), w)
		}
		if got := c.Next(); got != w {
			t.Errorf("step %d: Next = %v, want %v", i, got, w)
		}
	}

	if c.Position() != 5 {
		t.Errorf("Position = %d, want 5", c.Position())
	}
	if c.Phase() != 2 {
		t.Errorf("Phase = %d, want 2", c.Phase())
	}
}

func TestNewCursor_EmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for empty pattern")
		}
	}()
	NewCursor(nil)
}
