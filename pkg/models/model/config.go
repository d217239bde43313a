package model

// Switch is an ON/OFF command line flag value.
type Switch bool

const (
	On  Switch = true
	Off Switch = false
)

var switchName = map[string]Switch{
	"ON":   On,
	"On":   On,
	"on":   On,
	"1":    On,
	"true": On,

	"OFF":   Off,
	"Off":   Off,
	"off":   Off,
	"0":     Off,
	"false": Off,
}

// NewSwitch parses s; anything unknown is Off.
func NewSwitch(s string) Switch {
	return switchName[s]
}

func (s Switch) String() string {
	if s {
		return "ON"
	}
	return "OFF"
}
