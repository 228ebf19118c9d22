package compression

import (
	"github.com/GeekHorse/Pinto/utilities/text"
)

// Inflate reads `input` from its cursor to the end and appends the expanded
// text to `output`. Malformed back-references are FormatInvalid errors;
// expanding past [text.MaxLength] is a FormatTooLong error.
func Inflate(input *text.Buffer, output *text.Buffer) error {
	for !input.AtEnd() {
		ch, err := input.GetChar()
		if err != nil {
			return err
		}

		var distance int
		switch ch {
		case NearMarker:
			distance, err = input.GetValue()
		case FarMarker:
			// Always two raw digits, never the variable-length form.
			distance, err = input.UpdateValue(0)
			if err == nil {
				distance, err = input.UpdateValue(distance)
			}
		default:
			if err = output.AddChar(ch); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		length, err := input.GetValue()
		if err != nil {
			return err
		}
		if err = output.Expand(distance, length); err != nil {
			return err
		}
	}
	return nil
}
