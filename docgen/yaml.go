package docgen

import (
	"io"

	"gopkg.in/yaml.v3"
)

type yamlCommand struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type yamlOption struct {
	Name        string `yaml:"name"`
	Short       string `yaml:"short,omitempty"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Required    bool   `yaml:"required,omitempty"`
}

type yamlDoc struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Synopsis    string        `yaml:"synopsis"`
	Commands    []yamlCommand `yaml:"commands,omitempty"`
	Options     []yamlOption  `yaml:"options,omitempty"`
}

// YAML writes the document as a YAML description of the command surface.
func YAML(w io.Writer, doc Document) error {
	out := yamlDoc{
		Name:        doc.Name,
		Description: doc.Summary(),
		Synopsis:    doc.synopsis(),
	}
	for _, cmd := range doc.Commands {
		out.Commands = append(out.Commands, yamlCommand{Name: cmd.Name, Description: cmd.Description})
	}
	for _, flag := range doc.Flags {
		typeName := flag.Type
		if flag.Boolean {
			typeName = "boolean"
		}
		out.Options = append(out.Options, yamlOption{
			Name:        flag.Name,
			Short:       flag.Short,
			Description: flag.Description,
			Type:        typeName,
			Required:    flag.Required,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
