package input

// Key is a key name in the same vocabulary Bubble Tea uses ("w", "up",
// "ctrl+c"), so raw terminal input can be matched against a KeyMap.
type Key string

func (k Key) String() string {
	return string(k)
}

const (
	keyCtrlC = 0x03
	keyEsc   = 0x1b
)

// arrows maps the final byte of an "ESC [ x" sequence.
var arrows = map[byte]Key{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
}

// Decoder splits bytes read from a raw-mode terminal into keys.
// An escape sequence cut off at the end of one read is kept and completed
// by the next, so its tail bytes are never taken for letters.
type Decoder struct {
	pending []byte
}

// Decode returns the keys completed by buf.
// Printable ASCII becomes its character, Ctrl+C becomes "ctrl+c", arrow
// escape sequences become their direction. Other control bytes and
// unknown escape sequences are dropped. A trailing ESC or "ESC [" is held
// until the next call.
func (d *Decoder) Decode(buf []byte) []Key {
	data := buf
	if len(d.pending) > 0 {
		data = append(d.pending, buf...)
		d.pending = nil
	}

	var keys []Key
	for i := 0; i < len(data); i++ {
		b := data[i]
		switch {
		case b == keyCtrlC:
			keys = append(keys, "ctrl+c")

		case b == keyEsc:
			rest := len(data) - i
			if rest == 1 || (rest == 2 && isIntroducer(data[i+1])) {
				d.pending = append([]byte(nil), data[i:]...)
				return keys
			}
			if isIntroducer(data[i+1]) {
				if k, ok := arrows[data[i+2]]; ok {
					keys = append(keys, k)
				}
				i += 2
				continue
			}
			keys = append(keys, "esc")

		case b >= 0x20 && b < 0x7f:
			keys = append(keys, Key(string(rune(b))))
		}
	}
	return keys
}

// Flush returns a held escape as "esc" and clears the decoder.
func (d *Decoder) Flush() []Key {
	if len(d.pending) == 0 {
		return nil
	}
	d.pending = nil
	return []Key{"esc"}
}

func isIntroducer(b byte) bool {
	return b == '[' || b == 'O'
}
