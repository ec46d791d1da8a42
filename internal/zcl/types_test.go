package zcl

import "testing"

func TestTypeName(t *testing.T) {
	tests := []struct {
		typeID uint8
		want   string
	}{
		{TypeEnum8, "enum8"},
		{TypeUint48, "uint48"},
		{TypeCharStr, "string"},
		{TypeCharStr16, "string16"},
		{TypeStruct, "struct"},
		{TypeUTC, "UTC"},
		{TypeEUI64, "EUI64"},
		{0x77, "0x77"},
	}
	for _, tt := range tests {
		if got := TypeName(tt.typeID); got != tt.want {
			t.Errorf("TypeName(0x%02X) = %q, want %q", tt.typeID, got, tt.want)
		}
	}
}

func TestStatusName(t *testing.T) {
	if got := StatusName(ZCLStatusUnsupportedAttr); got != "UNSUPPORTED_ATTRIBUTE" {
		t.Errorf("StatusName(0x86) = %q", got)
	}
	if got := StatusName(0x42); got != "" {
		t.Errorf("StatusName(0x42) = %q, want empty", got)
	}
}
