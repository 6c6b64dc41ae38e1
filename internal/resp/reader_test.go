package resp_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/eternalApril/nisekv/internal/resp"
)

func TestReadInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{
			name:    "Valid positive",
			input:   ":1000\r\n",
			want:    1000,
			wantErr: nil,
		},
		{
			name:    "Valid positive with +",
			input:   ":+1230\r\n",
			want:    1230,
			wantErr: nil,
		},
		{
			name:    "Valid negative",
			input:   ":-15\r\n",
			want:    -15,
			wantErr: nil,
		},
		{
			name:    "Valid zero",
			input:   ":0\r\n",
			want:    0,
			wantErr: nil,
		},
		{
			name:    "Invalid ending",
			input:   ":1000\n",
			want:    0,
			wantErr: resp.ErrInvalidEnding,
		},
		{
			name:    "Not a number",
			input:   ":abc\r\n",
			want:    0,
			wantErr: resp.ErrInvalidNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := resp.NewDecoder(strings.NewReader(tt.input))

			val, err := r.Read()

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Read() expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Errorf("Read() unexpected error %v", err)
			}

			if val.Type != resp.TypeInteger {
				t.Errorf("Read() type = %v, want %v", val.Type, resp.TypeInteger)
			}

			if val.Integer != tt.want {
				t.Errorf("Read() num = %v, want %v", val.Integer, tt.want)
			}
		})
	}
}

func TestReadStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType byte
		want     string
		wantNull bool
	}{
		{"Simple string", "+OK\r\n", resp.TypeSimpleString, "OK", false},
		{"Error", "-ERR boom\r\n", resp.TypeError, "ERR boom", false},
		{"Bulk string", "$5\r\nhello\r\n", resp.TypeBulkString, "hello", false},
		{"Bulk string with CRLF inside", "$4\r\na\r\nb\r\n", resp.TypeBulkString, "a\r\nb", false},
		{"Empty bulk string", "$0\r\n\r\n", resp.TypeBulkString, "", false},
		{"Null bulk string", "$-1\r\n", resp.TypeBulkString, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, err := resp.NewDecoder(strings.NewReader(tt.input)).Read()
			if err != nil {
				t.Fatalf("Read() unexpected error %v", err)
			}
			if val.Type != tt.wantType {
				t.Errorf("Read() type = %c, want %c", val.Type, tt.wantType)
			}
			if string(val.String) != tt.want {
				t.Errorf("Read() string = %q, want %q", val.String, tt.want)
			}
			if val.IsNull != tt.wantNull {
				t.Errorf("Read() null = %v, want %v", val.IsNull, tt.wantNull)
			}
		})
	}
}

func TestReadArray(t *testing.T) {
	input := "*3\r\n$3\r\nSET\r\n$3\r\nkey\r\n:42\r\n*-1\r\n"
	d := resp.NewDecoder(strings.NewReader(input))

	val, err := d.Read()
	if err != nil {
		t.Fatalf("Read() unexpected error %v", err)
	}
	if val.Type != resp.TypeArray || len(val.Array) != 3 {
		t.Fatalf("Read() = %+v, want array of 3", val)
	}
	if string(val.Array[0].String) != "SET" || string(val.Array[1].String) != "key" {
		t.Errorf("Read() array = %+v", val.Array)
	}
	if val.Array[2].Integer != 42 {
		t.Errorf("Read() integer = %d, want 42", val.Array[2].Integer)
	}

	// the second value is already buffered
	if d.Buffered() == 0 {
		t.Errorf("Buffered() = 0, want > 0")
	}

	val, err = d.Read()
	if err != nil {
		t.Fatalf("Read() unexpected error %v", err)
	}
	if !val.IsNull || val.Type != resp.TypeArray {
		t.Errorf("Read() = %+v, want null array", val)
	}

	if _, err = d.Read(); err != io.EOF {
		t.Errorf("Read() error = %v, want EOF", err)
	}
}

func TestReadInline(t *testing.T) {
	d := resp.NewDecoder(strings.NewReader("SET  k v\r\nPING\n"))

	val, err := d.Read()
	if err != nil {
		t.Fatalf("Read() unexpected error %v", err)
	}
	if len(val.Array) != 3 || string(val.Array[2].String) != "v" {
		t.Errorf("Read() = %+v, want [SET k v]", val.Array)
	}

	val, err = d.Read()
	if err != nil {
		t.Fatalf("Read() unexpected error %v", err)
	}
	if len(val.Array) != 1 || string(val.Array[0].String) != "PING" {
		t.Errorf("Read() = %+v, want [PING]", val.Array)
	}
}

func TestReadInvalidLength(t *testing.T) {
	for _, input := range []string{"$-2\r\n", "*-5\r\n", "$3\r\nabcd\r\n"} {
		_, err := resp.NewDecoder(strings.NewReader(input)).Read()
		if err == nil {
			t.Errorf("Read(%q) expected error", input)
		}
	}
}

func TestReadRoundTrip(t *testing.T) {
	payload, err := resp.SerializeCommand("HSET", "h", "f", "")
	if err != nil {
		t.Fatalf("SerializeCommand() failed: %v", err)
	}

	val, err := resp.NewDecoder(strings.NewReader(string(payload))).Read()
	if err != nil {
		t.Fatalf("Read() unexpected error %v", err)
	}
	if len(val.Array) != 4 || string(val.Array[3].String) != "" || val.Array[3].IsNull {
		t.Errorf("Read() = %+v", val.Array)
	}
}
