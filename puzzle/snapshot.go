package puzzle

import (
	"io"

	"github.com/elogical/elogic/encode"
	"github.com/elogical/elogic/format"
	"github.com/elogical/elogic/tree"
)

// DefaultFormats are the renderings a snapshot carries when none are
// requested.
var DefaultFormats = []format.Format{
	format.TextFormat,
	format.TexFormat,
	format.HTMLFormat,
	format.PyFormat,
	format.ObjFormat,
}

// Snapshot is the serializable view of a puzzle handed to a UI.
type Snapshot struct {
	ID         string         `json:"id" yaml:"id"`
	Level      int            `json:"level" yaml:"level"`
	Difficulty int            `json:"difficulty" yaml:"difficulty"`
	Vars       []string       `json:"vars" yaml:"vars"`
	Solution   []bool         `json:"solution" yaml:"solution"`
	Render     map[string]any `json:"render" yaml:"render"`
	Ops        []string       `json:"ops" yaml:"ops"`
	Graph      tree.Graph     `json:"graph" yaml:"graph"`
}

func (p *Puzzle) Snapshot(formats ...format.Format) (*Snapshot, error) {
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	s := &Snapshot{
		ID:         p.ID.String(),
		Level:      p.Level,
		Difficulty: p.Difficulty,
		Vars:       p.Vars,
		Solution:   p.Solution,
		Render:     make(map[string]any, len(formats)),
		Graph:      tree.ToGraph(p.Tree),
	}
	for _, f := range formats {
		v, err := tree.Render(p.Tree, f)
		if err != nil {
			return nil, err
		}
		s.Render[f.String()] = v
	}
	ops, err := tree.Ops(p.Tree)
	if err != nil {
		return nil, err
	}
	s.Ops = ops
	return s, nil
}

// Encode writes the snapshot of p in the given formats.
func (p *Puzzle) Encode(w io.Writer, formats []format.Format, opts ...encode.EncodeOption) error {
	s, err := p.Snapshot(formats...)
	if err != nil {
		return err
	}
	return encode.Encode(s, w, opts...)
}
