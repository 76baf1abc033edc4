package segbox

// Key identifies a key the box handles itself.
type Key int

const (
	KeyOther Key = iota
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
)

// keyNames maps standard key identifiers to Keys.
var keyNames = map[string]Key{
	"Backspace":  KeyBackspace,
	"Delete":     KeyDelete,
	"ArrowLeft":  KeyLeft,
	"ArrowRight": KeyRight,
}

// ParseKey returns the Key for a standard key identifier such as "Backspace"
// or "ArrowLeft". Unknown identifiers map to KeyOther.
func ParseKey(name string) Key {
	if k, ok := keyNames[name]; ok {
		return k
	}
	return KeyOther
}

// String returns the standard identifier of the key
func (k Key) String() string {
	for name, v := range keyNames {
		if v == k {
			return name
		}
	}
	return "Other"
}
