package docgen

import (
	"encoding/json"
	"fmt"
	"io"
)

type schemaProperty struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type inputSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]schemaProperty `json:"properties"`
	Required   []string                  `json:"required"`
}

type anthropicTool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema inputSchema `json:"input_schema"`
}

type openaiFunction struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  inputSchema `json:"parameters"`
}

type openaiTool struct {
	Type     string         `json:"type"`
	Function openaiFunction `json:"function"`
}

// LLMAnthropic writes the document as an Anthropic tool-definition list,
// one tool per visible command (or a single tool when no commands exist).
func LLMAnthropic(w io.Writer, doc Document) error {
	tools := make([]anthropicTool, 0, len(doc.Commands)+1)
	for _, t := range toolEntries(doc) {
		tools = append(tools, anthropicTool{
			Name:        t.name,
			Description: t.description,
			InputSchema: toolSchema(doc.Flags),
		})
	}
	return writeJSON(w, tools)
}

// LLMOpenAI writes the document in OpenAI function-calling format, also
// consumed by Gemini and other OpenAI-compatible providers.
func LLMOpenAI(w io.Writer, doc Document) error {
	tools := make([]openaiTool, 0, len(doc.Commands)+1)
	for _, t := range toolEntries(doc) {
		tools = append(tools, openaiTool{
			Type: "function",
			Function: openaiFunction{
				Name:        t.name,
				Description: t.description,
				Parameters:  toolSchema(doc.Flags),
			},
		})
	}
	return writeJSON(w, tools)
}

type toolEntry struct {
	name        string
	description string
}

func toolEntries(doc Document) []toolEntry {
	if len(doc.Commands) == 0 {
		return []toolEntry{{SanitizeToolName(doc.Name), doc.Summary()}}
	}
	entries := make([]toolEntry, 0, len(doc.Commands))
	for _, cmd := range doc.Commands {
		desc := cmd.Description
		if desc == "" {
			desc = doc.Summary()
		}
		entries = append(entries, toolEntry{
			name:        SanitizeToolName(doc.Name + "_" + cmd.Name),
			description: desc,
		})
	}
	return entries
}

func toolSchema(flags []Flag) inputSchema {
	schema := inputSchema{
		Type:       "object",
		Properties: map[string]schemaProperty{},
		Required:   []string{},
	}
	for _, flag := range flags {
		schema.Properties[flag.Name] = schemaProperty{
			Type:        jsonType(flag),
			Description: flag.Description,
		}
		if flag.Required {
			schema.Required = append(schema.Required, flag.Name)
		}
	}
	return schema
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
