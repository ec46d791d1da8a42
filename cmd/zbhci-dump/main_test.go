package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloudsmets-go/internal/store"
)

// Metering response from 0x1234: UnitOfMeasure = kWh, summation = 65538.
const meterHex = "5581000017A51234010107070202030000300000000025000000010002AA"

func TestRunArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{meterHex}, nil, &out, &errOut)
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s, stdout = %s", code, errOut.String(), out.String())
	}
	want := "frame 1: cluster 0x0702 from 0x1234 ep 1->1 seq 7\n" +
		"  0x0000 CurrentSummationDelivered (uint48) = 65538\n" +
		"  0x0300 UnitOfMeasure (enum8) = kWh\n"
	if out.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRunStdinReportsFailures(t *testing.T) {
	stdin := strings.NewReader("# captured frames\n" + meterHex + "\n\n55 01 02 00 00 CC AA\n")
	var out, errOut bytes.Buffer
	code := run([]string{"-json"}, stdin, &out, &errOut)
	if code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}

	dec := json.NewDecoder(&out)
	// Message values are interfaces, so only the flat fields are read back.
	type flat struct {
		Kind       string            `json:"kind"`
		Error      string            `json:"error"`
		Attributes []json.RawMessage `json:"attributes"`
	}
	var results []flat
	for dec.More() {
		var r flat
		if err := dec.Decode(&r); err != nil {
			t.Fatal(err)
		}
		results = append(results, r)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].Kind != "none" || len(results[0].Attributes) != 2 {
		t.Errorf("results[0] = %+v", results[0])
	}
	if results[1].Kind != "crc_mismatch" || !strings.Contains(results[1].Error, "expected: 0x03, received: 0xCC") {
		t.Errorf("results[1] = %+v", results[1])
	}
}

func TestRunBadHex(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"55zz"}, nil, &out, &errOut); code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "frame 1") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestRunFromCaptureDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "captures.db")
	db, err := store.NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	err = db.SaveCapture(&store.Capture{
		ReceivedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Source:     "mqtt",
		Frame:      store.HexBytes{0x11, 0x22, 0xAA},
		Kind:       "framing",
	})
	if err != nil {
		t.Fatal(err)
	}
	db.Close()

	var out, errOut bytes.Buffer
	code := run([]string{"-db", path}, nil, &out, &errOut)
	if code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}
	want := "capture 1 (mqtt, 2024-03-01T12:00:00Z): framing: zbhci: frame start/end invalid: 0x11, 0xAA\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
