package zcl

// ZCL status codes
const (
	ZCLStatusSuccess         uint8 = 0x00
	ZCLStatusFailure         uint8 = 0x01
	ZCLStatusUnsupportedAttr uint8 = 0x86
	ZCLStatusInvalidValue    uint8 = 0x87
	ZCLStatusReadOnly        uint8 = 0x88
	ZCLStatusNotFound        uint8 = 0x8B
	ZCLStatusUnreportable    uint8 = 0x8C
	ZCLStatusInvalidDataType uint8 = 0x8D
)

var statusNames = map[uint8]string{
	ZCLStatusSuccess:         "SUCCESS",
	ZCLStatusFailure:         "FAILURE",
	ZCLStatusUnsupportedAttr: "UNSUPPORTED_ATTRIBUTE",
	ZCLStatusInvalidValue:    "INVALID_VALUE",
	ZCLStatusReadOnly:        "READ_ONLY",
	ZCLStatusNotFound:        "NOT_FOUND",
	ZCLStatusUnreportable:    "UNREPORTABLE_ATTRIBUTE",
	ZCLStatusInvalidDataType: "INVALID_DATA_TYPE",
}

// StatusName returns the ZCL name of a status code, or "" if unknown.
func StatusName(status uint8) string {
	return statusNames[status]
}
