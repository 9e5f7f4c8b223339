package stack

// file mirrors the YAML document before it is mapped to a [Stack].
type file struct {
	Root     string      `yaml:"root"`
	Platform string      `yaml:"platform"`
	Append   any         `yaml:"append"`
	Compact  bool        `yaml:"compact"`
	Layers   []layerFile `yaml:"layers"`
}

type layerFile struct {
	Name string        `yaml:"name"`
	Root string        `yaml:"root"`
	Env  []declareFile `yaml:"env"`
}

type declareFile struct {
	Vars   map[string]any `yaml:"vars"`
	Append any            `yaml:"append"`
}
