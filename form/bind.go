package form

import (
	"fmt"
	"net/http"
	"strings"

	pgform "github.com/go-playground/form/v4"
)

var decoder = newDecoder()

func newDecoder() *pgform.Decoder {
	d := pgform.NewDecoder()
	// Browsers post "on" for a ticked checkbox and nothing when unticked.
	d.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		return checked(vals[0]), nil
	}, false)
	return d
}

// Bind decodes the posted values of r into the `form`-tagged fields of dst.
// Unchecked checkboxes are absent from a post and bind as false.
func Bind(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("failed to parse form: %w", err)
	}
	if err := decoder.Decode(dst, r.PostForm); err != nil {
		return fmt.Errorf("failed to bind form: %w", err)
	}
	return nil
}

func checked(v string) bool {
	switch strings.ToLower(v) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
