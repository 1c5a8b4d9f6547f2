package enum

import "strings"

// RecordType is a Namecheap DNS host record type.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeMX    RecordType = "MX"
	RecordTypeMXE   RecordType = "MXE"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeURL   RecordType = "URL"
	RecordTypeFRAME RecordType = "FRAME"
)

func (t RecordType) String() string {
	return string(t)
}

func (t RecordType) IsValid() bool {
	switch t {
	case RecordTypeA, RecordTypeAAAA, RecordTypeCNAME, RecordTypeMX, RecordTypeMXE, RecordTypeTXT, RecordTypeURL, RecordTypeFRAME:
		return true
	}
	return false
}

func GetRecordType(s string) RecordType {
	return RecordType(strings.ToUpper(s))
}
