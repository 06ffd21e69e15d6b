package adapters

import (
	"github.com/BurntSushi/toml"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"crate-resolver/internal/types"
)

// TOMLDecoderAdapter parses manifest bytes into the generic nested tree.
// The resolver core never sees TOML syntax, only the decoded tables.
type TOMLDecoderAdapter struct{}

func NewTOMLDecoderAdapter() TOMLDecoderAdapter {
	return TOMLDecoderAdapter{}
}

func (a TOMLDecoderAdapter) Decode(data []byte) (types.Table, error) {
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid manifest document").
			WithCause(err)
	}
	return types.Table(tree), nil
}
