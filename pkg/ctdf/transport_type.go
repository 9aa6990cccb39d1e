package ctdf

type TransportType string

const (
	TransportTypeBus      TransportType = "Bus"
	TransportTypeMicroBus TransportType = "MicroBus"
	TransportTypeCoach    TransportType = "Coach"
	TransportTypeUnknown  TransportType = "UNKNOWN"
)
