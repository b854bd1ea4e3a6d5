package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/ttree/entity"
)

func MustString(e *entity.Entity) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(e, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
