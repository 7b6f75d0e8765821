package packet

// Direction identifies which side of the connection produced a frame.
type Direction uint8

const (
	// ServerToClient frames are produced by the server.
	ServerToClient Direction = iota
	// ClientToServer frames are produced by the game client.
	ClientToServer
)

func (d Direction) String() string {
	if d == ClientToServer {
		return "client"
	}
	return "server"
}

// EncryptMethod is the cipher class of an opcode.
type EncryptMethod uint8

const (
	// EncryptNone frames carry neither ordinal nor trailer.
	EncryptNone EncryptMethod = iota
	// EncryptNormal frames use the connection's default key.
	EncryptNormal
	// EncryptMD5Key frames use a key derived per frame from the key table.
	EncryptMD5Key
)

// Server opcodes referenced by the dialog subsystem and the transport.
const (
	OpConnectionInfo  byte = 0x00
	OpSystemMessage   byte = 0x0A
	OpMerchantMenu    byte = 0x2F
	OpDialog          byte = 0x30
	OpServerHeartbeat byte = 0x3B
)

// Client opcodes referenced by the dialog subsystem and the transport.
const (
	OpClientVersion byte = 0x00
	OpClientJoin    byte = 0x10
	OpMainMenuUse   byte = 0x39
	OpDialogUse     byte = 0x3A
	OpClientClick   byte = 0x43
	OpClientPing    byte = 0x45
)

var serverMethods = methodTable(
	[]byte{0x00, 0x03, 0x40, 0x7E},
	[]byte{0x01, 0x02, 0x0A, 0x56, 0x60, 0x62, 0x66, 0x6F},
)

var clientMethods = methodTable(
	[]byte{0x00, 0x10},
	[]byte{0x02, 0x03, 0x04, 0x0B, 0x26, 0x2D, 0x3A, 0x42, 0x43, 0x4B, 0x57, 0x62, 0x68, 0x71, 0x73, 0x7B},
)

func methodTable(none, normal []byte) [256]EncryptMethod {
	var t [256]EncryptMethod
	for i := range t {
		t[i] = EncryptMD5Key
	}
	for _, op := range none {
		t[op] = EncryptNone
	}
	for _, op := range normal {
		t[op] = EncryptNormal
	}
	return t
}

// MethodFor returns the cipher class of opcode travelling in direction dir.
func MethodFor(dir Direction, opcode byte) EncryptMethod {
	if dir == ClientToServer {
		return clientMethods[opcode]
	}
	return serverMethods[opcode]
}

// IsDialogOpcode reports whether a client opcode carries the dialog header.
func IsDialogOpcode(opcode byte) bool {
	return opcode == OpMainMenuUse || opcode == OpDialogUse
}
