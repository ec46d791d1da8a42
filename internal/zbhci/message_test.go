package zbhci

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"cloudsmets-go/internal/zcl"
)

// meterFrame carries the summation, serial number and unit of measure out
// of ID order.
func meterFrame() []byte {
	return buildFrame(CmdReadAttributesResponse, commandPayload(meterHeader,
		record(0x0308, zcl.TypeOctetStr, shortString("Hello")...),
		record(0x0300, zcl.TypeEnum8, 0x00),
		record(0x0000, zcl.TypeUint48, 0x00, 0x00, 0x30, 0x39, 0x00, 0x07),
	))
}

func TestDecodeMeterFrame(t *testing.T) {
	msg, err := Decode(meterFrame())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if msg.Command != meterHeader {
		t.Errorf("command = %+v, want %+v", msg.Command, meterHeader)
	}
	if msg.Frame.CommandID != CmdReadAttributesResponse {
		t.Errorf("command id = 0x%04X", msg.Frame.CommandID)
	}

	wantIDs := []uint16{0x0000, 0x0300, 0x0308}
	if len(msg.Attributes) != len(wantIDs) {
		t.Fatalf("attributes = %d, want %d", len(msg.Attributes), len(wantIDs))
	}
	for i, id := range wantIDs {
		if msg.Attributes[i].ID != id {
			t.Errorf("attribute[%d] = 0x%04X, want 0x%04X", i, msg.Attributes[i].ID, id)
		}
	}

	// 0x00003039<<16 | 0x0007
	if got := msg.Attributes[0].Value.String(); got != "809041927" {
		t.Errorf("summation = %s, want 809041927", got)
	}
	if got := msg.Attributes[2].Value; got != Text("Hello") {
		t.Errorf("serial = %#v, want Hello", got)
	}

	rendered, err := DefaultResolver().RenderMessage(msg)
	if err != nil {
		t.Fatalf("RenderMessage: %v", err)
	}
	want := []Rendered{
		{ID: 0x0000, Name: "CurrentSummationDelivered", Type: "uint48", Value: "809041927"},
		{ID: 0x0300, Name: "UnitOfMeasure", Type: "enum8", Value: "kWh"},
		{ID: 0x0308, Name: "MeterSerialNumber", Type: "octstr", Value: "Hello"},
	}
	if !reflect.DeepEqual(rendered, want) {
		t.Errorf("rendered = %+v\nwant %+v", rendered, want)
	}
}

func TestDecodeDeterministic(t *testing.T) {
	frame := meterFrame()
	first, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			again, err := Decode(frame)
			if err != nil {
				t.Errorf("Decode: %v", err)
				return
			}
			if !reflect.DeepEqual(first, again) {
				t.Errorf("decode not deterministic: %+v != %+v", first, again)
			}
		}()
	}
	wg.Wait()
}

func TestDecodeStableSort(t *testing.T) {
	frame := buildFrame(CmdReadAttributesResponse, commandPayload(meterHeader,
		record(0x0005, zcl.TypeUint16, 0, 3),
		record(0x0001, zcl.TypeUint16, 0, 1),
		record(0x0005, zcl.TypeUint16, 0, 4),
		record(0x0001, zcl.TypeUint16, 0, 2),
	))
	msg, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	var got []string
	for _, a := range msg.Attributes {
		got = append(got, a.Value.String())
	}
	if want := []string{"1", "2", "3", "4"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}

	a, ok := msg.Find(0x0005)
	if !ok || a.Value != Uint16(3) {
		t.Errorf("Find(0x0005) = %+v, %v; want first wire record", a, ok)
	}
	if _, ok := msg.Find(0x0002); ok {
		t.Error("Find(0x0002) should miss")
	}
}

func TestDecodeEmptyAttributeList(t *testing.T) {
	msg, err := Decode(buildFrame(CmdReadAttributesResponse, commandPayload(meterHeader)))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(msg.Attributes) != 0 {
		t.Errorf("attributes = %d, want 0", len(msg.Attributes))
	}
}

func TestDecodeErrors(t *testing.T) {
	overrun := commandPayload(meterHeader, record(0x0000, zcl.TypeUint16, 0, 1))
	overrun[CommandHeaderLength] = 2 // claims two records, carries one

	// The record runs into the end marker when the declared length is short.
	clipped := buildFrame(CmdReadAttributesResponse, commandPayload(meterHeader, record(0x0000, zcl.TypeUint32, 0, 0, 0, 1)))
	clipped = append(clipped[:len(clipped)-2], FrameEnd)
	clipped[4]--
	clipped[crcOffset] = CRC8(CmdReadAttributesResponse, uint16(len(clipped)-FrameOverhead), clipped, headerLength)

	badCRC := meterFrame()
	badCRC[crcOffset] ^= 0xFF

	tests := []struct {
		name  string
		frame []byte
		kind  Kind
	}{
		{"empty", nil, KindShortFrame},
		{"framing", []byte{0x11, 0x22, 0xAA}, KindFraming},
		{"crc", badCRC, KindCRCMismatch},
		{"other command", buildFrame(0x8001, commandPayload(meterHeader)), KindUnsupportedCommand},
		{"missing command header", buildFrame(CmdReadAttributesResponse, []byte{0x12, 0x34}), KindTruncated},
		{"missing count", buildFrame(CmdReadAttributesResponse, commandPayload(meterHeader)[:CommandHeaderLength]), KindTruncated},
		{"count overrun", buildFrame(CmdReadAttributesResponse, overrun), KindTruncated},
		{"value clipped by payload length", clipped, KindTruncated},
		{"struct value", buildFrame(CmdReadAttributesResponse, commandPayload(meterHeader,
			record(0x0000, zcl.TypeUint16, 0, 1),
			record(0x0001, zcl.TypeStruct, 0, 0))), KindUnsupportedValueType},
		{"failed status", buildFrame(CmdReadAttributesResponse, commandPayload(meterHeader,
			record(0x0000, zcl.TypeUint16, 0, 1),
			[]byte{0x03, 0x00, zcl.ZCLStatusUnsupportedAttr},
			record(0x0308, zcl.TypeCharStr, shortString("x")...))), KindAttributeStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Decode(tt.frame)
			if msg != nil {
				t.Errorf("partial message returned: %+v", msg)
			}
			if got := KindOf(err); got != tt.kind {
				t.Errorf("kind = %v (%v), want %v", got, err, tt.kind)
			}
		})
	}
}

func TestDecodeStructTagCarried(t *testing.T) {
	frame := buildFrame(CmdReadAttributesResponse, commandPayload(meterHeader,
		record(0x0001, zcl.TypeStruct, 0, 0)))
	_, err := Decode(frame)
	var ve *ValueTypeError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValueTypeError", err)
	}
	if ve.Tag != 0x4C {
		t.Errorf("tag = 0x%02X, want 0x4C", ve.Tag)
	}
}

func TestDecodeIgnoresTrailingPayload(t *testing.T) {
	payload := append(commandPayload(meterHeader, record(0x0000, zcl.TypeUint16, 0, 9)), 0xDE, 0xAD)
	msg, err := Decode(buildFrame(CmdReadAttributesResponse, payload))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(msg.Attributes) != 1 || msg.Attributes[0].Value != Uint16(9) {
		t.Errorf("attributes = %+v", msg.Attributes)
	}
}
