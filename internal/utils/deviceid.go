package utils

import "github.com/google/uuid"

const deviceIDPrefix = "android:"

// DeviceIDGenerator mints device identifiers in the format the
// mobile-confirmation endpoints expect ("android:" followed by a UUID).
// Used when an imported account file carries no device_id.
type DeviceIDGenerator struct {
}

func NewDeviceIDGenerator() *DeviceIDGenerator {
	return &DeviceIDGenerator{}
}

func (g *DeviceIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return deviceIDPrefix + uuid.NewString()
	}

	return deviceIDPrefix + v7.String()
}
