package store

import (
	"encoding/hex"
	"encoding/json"
	"time"
)

// Capture is a raw frame kept for later inspection, together with the
// outcome of decoding it.
type Capture struct {
	ID         uint64    `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
	Source     string    `json:"source"` // "mqtt", "serial"
	Frame      HexBytes  `json:"frame"`
	Kind       string    `json:"kind"`            // decode outcome, "none" on success
	Error      string    `json:"error,omitempty"` // decode error text
}

// Failed reports whether the captured frame failed to decode.
func (c *Capture) Failed() bool {
	return c.Error != ""
}

// HexBytes marshals as a hex string so stored frames stay readable with
// generic bolt tooling.
type HexBytes []byte

func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

func (h *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	*h = b
	return nil
}
