package i8088

// BusStatus is the bus cycle type latched from the S0-S2 status lines at
// the start of the cycle. It is distinct from the I8288 command lines,
// which only assert partway through the cycle. The values follow the
// hardware S2..S0 encoding so they can be emitted to captures directly.
type BusStatus uint8

const (
	BusInterruptAck BusStatus = iota
	BusIoRead
	BusIoWrite
	BusHalt
	BusCodeFetch
	BusMemRead
	BusMemWrite
	BusPassive
)

// Label returns the fixed 4-char status column.
func (s BusStatus) Label() string {
	switch s {
	case BusInterruptAck:
		return "IRQA"
	case BusIoRead:
		return "IOR "
	case BusIoWrite:
		return "IOW "
	case BusHalt:
		return "HALT"
	case BusCodeFetch:
		return "CODE"
	case BusMemRead:
		return "MEMR"
	case BusMemWrite:
		return "MEMW"
	default:
		return "PASV"
	}
}
