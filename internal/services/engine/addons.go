package engine

// Fixed add-on prices in pence, excluding VAT.
const (
	flueExtensionPricePerMetre int64 = 8000
	parkingFeePerMetre         int64 = 500
	freeParkingDistanceMetres        = 10
	condensatePumpPrice        int64 = 25000
	thermostatUpgradePrice     int64 = 15000
	smartThermostatPrice       int64 = 20000
)

// Sundry bundle in pence. Every installation carries the same fixed bundle;
// the Luxury tier adds the smart thermostat on top.
const (
	magneticFilterPrice int64 = 15000
	chemicalFlushPrice  int64 = 12000
	flueKitPrice        int64 = 10000
	trvPrice            int64 = 8000

	sundryBundlePrice = magneticFilterPrice + chemicalFlushPrice + flueKitPrice + trvPrice
)

// FlueExtensionPrice prices a flue extension by length in metres.
func FlueExtensionPrice(metres int) int64 {
	if metres <= 0 {
		return 0
	}
	return int64(metres) * flueExtensionPricePerMetre
}

// ParkingFee charges for carry distance beyond the free allowance. The first
// 10 metres are included in labour.
func ParkingFee(distanceMetres int) int64 {
	if distanceMetres <= freeParkingDistanceMetres {
		return 0
	}
	return int64(distanceMetres-freeParkingDistanceMetres) * parkingFeePerMetre
}

// CylinderPrice prices an unvented cylinder, supplied and fitted, by
// capacity in litres. Zero capacity means no cylinder.
func CylinderPrice(capacityLitres int) int64 {
	switch {
	case capacityLitres <= 0:
		return 0
	case capacityLitres <= 150:
		return 110000
	case capacityLitres <= 180:
		return 140000
	case capacityLitres <= 210:
		return 170000
	case capacityLitres <= 250:
		return 200000
	case capacityLitres <= 300:
		return 230000
	default:
		return 270000
	}
}
