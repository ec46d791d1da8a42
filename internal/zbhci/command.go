package zbhci

// CommandHeaderLength is the size of the addressing block at the start of
// the payload.
const CommandHeaderLength = 7

// CommandHeader is the addressing block of a read-attributes response.
type CommandHeader struct {
	SourceAddress       uint16 `json:"source_address"`
	SourceEndpoint      uint8  `json:"source_endpoint"`
	DestinationEndpoint uint8  `json:"destination_endpoint"`
	SequenceNumber      uint8  `json:"sequence_number"`
	ClusterID           uint16 `json:"cluster_id"`
}

// ParseCommandHeader decodes the command header at off and returns the
// offset just past it.
func ParseCommandHeader(frame []byte, off int) (CommandHeader, int, error) {
	r := reader{buf: frame, off: off}
	var (
		h   CommandHeader
		err error
	)
	if h.SourceAddress, err = r.u16("source address"); err != nil {
		return CommandHeader{}, off, err
	}
	if h.SourceEndpoint, err = r.u8("source endpoint"); err != nil {
		return CommandHeader{}, off, err
	}
	if h.DestinationEndpoint, err = r.u8("destination endpoint"); err != nil {
		return CommandHeader{}, off, err
	}
	if h.SequenceNumber, err = r.u8("sequence number"); err != nil {
		return CommandHeader{}, off, err
	}
	if h.ClusterID, err = r.u16("cluster id"); err != nil {
		return CommandHeader{}, off, err
	}
	return h, r.off, nil
}
