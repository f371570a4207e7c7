// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adxl343

// I2CAddr is the 7-bit bus address of the device with ALT ADDRESS tied low.
const I2CAddr uint16 = 0x53

// DeviceIDValue is the fixed content of the DEVID register.
const DeviceIDValue byte = 0xE5

// Register addresses, named as in the datasheet.
const (
	DevID         byte = 0x00 // Device ID
	ThreshTap     byte = 0x1D // Tap threshold
	OfsX          byte = 0x1E // X-axis offset
	OfsY          byte = 0x1F // Y-axis offset
	OfsZ          byte = 0x20 // Z-axis offset
	Dur           byte = 0x21 // Tap duration
	Latent        byte = 0x22 // Tap latency
	Window        byte = 0x23 // Tap window
	ThreshAct     byte = 0x24 // Activity threshold
	ThreshInact   byte = 0x25 // Inactivity threshold
	TimeInact     byte = 0x26 // Inactivity time
	ActInactCtl   byte = 0x27 // Axis enable control for activity and inactivity detection
	ThreshFF      byte = 0x28 // Free-fall threshold
	TimeFF        byte = 0x29 // Free-fall time
	TapAxes       byte = 0x2A // Axis control for single tap/double tap
	ActTapStatus  byte = 0x2B // Source of single tap/double tap
	BWRateReg     byte = 0x2C // Data rate and power mode control
	PowerCtlReg   byte = 0x2D // Power-saving features control
	IntEnable     byte = 0x2E // Interrupt enable control
	IntMap        byte = 0x2F // Interrupt mapping control
	IntSource     byte = 0x30 // Source of interrupts
	DataFormatReg byte = 0x31 // Data format control

	DataX0 byte = 0x32 // X-axis data 0
	DataX1 byte = 0x33 // X-axis data 1
	DataY0 byte = 0x34 // Y-axis data 0
	DataY1 byte = 0x35 // Y-axis data 1
	DataZ0 byte = 0x36 // Z-axis data 0
	DataZ1 byte = 0x37 // Z-axis data 1

	FifoCtlReg byte = 0x38 // FIFO control
	FifoStatus byte = 0x39 // FIFO status
)

// Rate is the output data rate code stored in BW_RATE bits 0-3.
type Rate byte

// Output data rates. Rate100Hz is the power-on default.
const (
	Rate0_10Hz Rate = 0x0
	Rate0_20Hz Rate = 0x1
	Rate0_39Hz Rate = 0x2
	Rate0_78Hz Rate = 0x3
	Rate1_56Hz Rate = 0x4
	Rate3_13Hz Rate = 0x5
	Rate6_25Hz Rate = 0x6
	Rate12_5Hz Rate = 0x7
	Rate25Hz   Rate = 0x8
	Rate50Hz   Rate = 0x9
	Rate100Hz  Rate = 0xA
	Rate200Hz  Rate = 0xB
	Rate400Hz  Rate = 0xC
	Rate800Hz  Rate = 0xD
	Rate1600Hz Rate = 0xE
	Rate3200Hz Rate = 0xF
)

// Range is the g range stored in DATA_FORMAT bits 0-1.
type Range byte

const (
	Range2G  Range = 0x0 // ±2g
	Range4G  Range = 0x1 // ±4g
	Range8G  Range = 0x2 // ±8g
	Range16G Range = 0x3 // ±16g
)

// Justification selects how a reading is packed in its two data registers.
type Justification byte

const (
	// RightJustified places the least significant bit at bit 0 of DATAx0
	// and sign extends into the upper bits.
	RightJustified Justification = 0
	// LeftJustified places the most significant bit at bit 7 of DATAx1.
	LeftJustified Justification = 1
)

// Resolution selects the number of significant bits in a reading.
type Resolution byte

const (
	// Resolution10Bit always uses 10 bits; the scale factor grows with the
	// range.
	Resolution10Bit Resolution = 0
	// FullResolution uses 10 to 13 bits depending on the range, keeping
	// 3.9mg/LSB across ranges.
	FullResolution Resolution = 1
)

// WakeupRate is the reading frequency in sleep mode, POWER_CTL bits 0-1.
type WakeupRate byte

const (
	Wakeup8Hz WakeupRate = 0x0
	Wakeup4Hz WakeupRate = 0x1
	Wakeup2Hz WakeupRate = 0x2
	Wakeup1Hz WakeupRate = 0x3
)

// FifoMode is the FIFO operating mode, FIFO_CTL bits 6-7.
type FifoMode byte

const (
	FifoBypass  FifoMode = 0x0
	FifoFIFO    FifoMode = 0x1
	FifoStream  FifoMode = 0x2
	FifoTrigger FifoMode = 0x3
)

// Bit positions and masks of the register layouts.
const (
	bwRateMask    = 0x0F
	bwLowPowerBit = 4

	pcWakeupMask   = 0x03
	pcSleepBit     = 2
	pcMeasureBit   = 3
	pcAutoSleepBit = 4
	pcLinkBit      = 5

	dfRangeMask    = 0x03
	dfJustifyBit   = 2
	dfFullResBit   = 3
	dfIntInvertBit = 5
	dfSPIBit       = 6
	dfSelfTestBit  = 7

	fcSamplesMask = 0x1F
	fcTriggerBit  = 5
	fcModeShift   = 6
	fcModeMask    = 0x03
)

// BWRate is the layout of the BW_RATE register.
type BWRate struct {
	Rate     Rate
	LowPower bool
}

// Encode packs b into its register byte. Bits 5-7 are always zero.
func (b BWRate) Encode() byte {
	return byte(b.Rate)&bwRateMask | bit(b.LowPower, bwLowPowerBit)
}

// DecodeBWRate unpacks a BW_RATE register byte.
func DecodeBWRate(v byte) BWRate {
	return BWRate{
		Rate:     Rate(v & bwRateMask),
		LowPower: isSet(v, bwLowPowerBit),
	}
}

// PowerCtl is the layout of the POWER_CTL register.
type PowerCtl struct {
	Wakeup    WakeupRate
	Sleep     bool
	Measure   bool
	AutoSleep bool
	Link      bool
}

// Encode packs p into its register byte. Bits 6-7 are always zero.
func (p PowerCtl) Encode() byte {
	return byte(p.Wakeup)&pcWakeupMask |
		bit(p.Sleep, pcSleepBit) |
		bit(p.Measure, pcMeasureBit) |
		bit(p.AutoSleep, pcAutoSleepBit) |
		bit(p.Link, pcLinkBit)
}

// DecodePowerCtl unpacks a POWER_CTL register byte.
func DecodePowerCtl(v byte) PowerCtl {
	return PowerCtl{
		Wakeup:    WakeupRate(v & pcWakeupMask),
		Sleep:     isSet(v, pcSleepBit),
		Measure:   isSet(v, pcMeasureBit),
		AutoSleep: isSet(v, pcAutoSleepBit),
		Link:      isSet(v, pcLinkBit),
	}
}

// DataFormat is the layout of the DATA_FORMAT register.
type DataFormat struct {
	Range      Range
	Justify    Justification
	Resolution Resolution
	IntInvert  bool
	SPI3Wire   bool
	SelfTest   bool
}

// Encode packs f into its register byte. Bit 4 is always zero.
func (f DataFormat) Encode() byte {
	return byte(f.Range)&dfRangeMask |
		byte(f.Justify&1)<<dfJustifyBit |
		byte(f.Resolution&1)<<dfFullResBit |
		bit(f.IntInvert, dfIntInvertBit) |
		bit(f.SPI3Wire, dfSPIBit) |
		bit(f.SelfTest, dfSelfTestBit)
}

// DecodeDataFormat unpacks a DATA_FORMAT register byte.
func DecodeDataFormat(v byte) DataFormat {
	return DataFormat{
		Range:      Range(v & dfRangeMask),
		Justify:    Justification((v >> dfJustifyBit) & 1),
		Resolution: Resolution((v >> dfFullResBit) & 1),
		IntInvert:  isSet(v, dfIntInvertBit),
		SPI3Wire:   isSet(v, dfSPIBit),
		SelfTest:   isSet(v, dfSelfTestBit),
	}
}

// FifoCtl is the layout of the FIFO_CTL register.
type FifoCtl struct {
	// Samples is the watermark or trigger sample count; 5 bits.
	Samples uint8
	// TriggerINT2 routes the trigger event to INT2 instead of INT1.
	TriggerINT2 bool
	Mode        FifoMode
}

// Encode packs f into its register byte.
func (f FifoCtl) Encode() byte {
	return f.Samples&fcSamplesMask |
		bit(f.TriggerINT2, fcTriggerBit) |
		(byte(f.Mode)&fcModeMask)<<fcModeShift
}

// DecodeFifoCtl unpacks a FIFO_CTL register byte.
func DecodeFifoCtl(v byte) FifoCtl {
	return FifoCtl{
		Samples:     v & fcSamplesMask,
		TriggerINT2: isSet(v, fcTriggerBit),
		Mode:        FifoMode((v >> fcModeShift) & fcModeMask),
	}
}

func bit(b bool, pos uint) byte {
	if b {
		return 1 << pos
	}
	return 0
}

func isSet(v byte, pos uint) bool {
	return v&(1<<pos) != 0
}
