package composite

import "strings"

// ManufacturerResolver derives a manufacturer tag from a sensor serial.
// It is injected rather than hardcoded so the prefix table — explicitly
// flagged as a placeholder in spec §9 — can be swapped without touching
// Manager.
type ManufacturerResolver interface {
	Resolve(serial string) string
}

// defaultPrefixTable is the fixed first-character table from spec §4.3.
var defaultPrefixTable = map[byte]string{
	'1': "Qualcomm",
	'2': "Texas Instruments",
	'3': "NXP",
	'9': "Infineon",
}

// DefaultManufacturerResolver implements the spec's placeholder prefix
// table: the serial's first character selects a manufacturer, defaulting
// to "Unknown" for any unlisted prefix or empty serial.
type DefaultManufacturerResolver struct{}

func (DefaultManufacturerResolver) Resolve(serial string) string {
	if serial == "" {
		return "Unknown"
	}
	if name, ok := defaultPrefixTable[serial[0]]; ok {
		return name
	}
	return "Unknown"
}

var _ ManufacturerResolver = DefaultManufacturerResolver{}

func groupNameFor(manufacturer string) string {
	return "Manufacturer: " + manufacturer
}

func isManufacturerGroup(name string) (string, bool) {
	const prefix = "Manufacturer: "
	if strings.HasPrefix(name, prefix) {
		return strings.TrimPrefix(name, prefix), true
	}
	return "", false
}
