package i8088

// I8288 latches the bus controller's command outputs for the current
// half-cycle. All six command lines are active low on the wire; a set
// flag here means the line is being driven (low), so the rendered
// letter marks electrical assertion, not a logical true level.
type I8288 struct {
	ALE   bool // address latch enable
	MRDC  bool // memory read command
	AMWC  bool // advanced memory write command
	MWTC  bool // memory write command
	IORC  bool // I/O read command
	AIOWC bool // advanced I/O write command
	IOWC  bool // I/O write command
}

func signalChar(asserted bool, letter byte) byte {
	if asserted {
		return letter
	}
	return '.'
}

// signalBlock renders the fixed 6-signal command column,
// "M:{mrdc}{amwc}{mwtc} I:{iorc}{aiowc}{iowc}".
func (c I8288) signalBlock() string {
	return "M:" +
		string(signalChar(c.MRDC, 'R')) +
		string(signalChar(c.AMWC, 'A')) +
		string(signalChar(c.MWTC, 'W')) +
		" I:" +
		string(signalChar(c.IORC, 'R')) +
		string(signalChar(c.AIOWC, 'A')) +
		string(signalChar(c.IOWC, 'W'))
}

// isReading reports whether either read command line is asserted.
func (c I8288) isReading() bool {
	return c.MRDC || c.IORC
}

// isWriting reports whether either (non-advanced) write command line is
// asserted.
func (c I8288) isWriting() bool {
	return c.MWTC || c.IOWC
}
