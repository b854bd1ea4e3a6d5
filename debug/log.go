package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/ttree/encode"
	"github.com/signadot/ttree/entity"
)

type Tree struct{ *entity.Entity }

func (y Tree) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(y.Entity, buf); err != nil {
		return fmt.Sprintf("[raw *entity.Entity] %v", y.Entity)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *entity.Entity:
			args[i] = Tree{x}.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
