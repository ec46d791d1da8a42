package zbhci

import "sort"

// Message is a fully decoded read-attributes response. Attributes are
// ordered by ID; records sharing an ID keep their wire order.
type Message struct {
	Frame      FrameHeader   `json:"frame"`
	Command    CommandHeader `json:"command"`
	Attributes []Attribute   `json:"attributes"`
}

// Decode decodes one frame. It either returns a complete Message or the
// first violation found; no partial message is returned.
func Decode(frame []byte) (*Message, error) {
	hdr, off, err := ParseHeader(frame)
	if err != nil {
		return nil, err
	}

	// Payload reads may not run into the end marker or past the declared length.
	payload := frame[:off+int(hdr.PayloadLength)]

	cmd, off, err := ParseCommandHeader(payload, off)
	if err != nil {
		return nil, err
	}
	if hdr.CommandID != CmdReadAttributesResponse {
		return nil, &CommandError{CommandID: hdr.CommandID}
	}

	r := reader{buf: payload, off: off}
	count, err := r.u8("attribute count")
	if err != nil {
		return nil, err
	}
	off = r.off

	attrs := make([]Attribute, 0, count)
	for i := 0; i < int(count); i++ {
		var a Attribute
		a, off, err = ParseAttribute(payload, off)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}
	sort.SliceStable(attrs, func(i, j int) bool { return attrs[i].ID < attrs[j].ID })

	return &Message{Frame: hdr, Command: cmd, Attributes: attrs}, nil
}

// Find returns the first attribute with the given ID.
func (m *Message) Find(id uint16) (Attribute, bool) {
	i := sort.Search(len(m.Attributes), func(i int) bool { return m.Attributes[i].ID >= id })
	if i < len(m.Attributes) && m.Attributes[i].ID == id {
		return m.Attributes[i], true
	}
	return Attribute{}, false
}
