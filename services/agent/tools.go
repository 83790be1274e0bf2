package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"slidechat/services/content"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/invopop/jsonschema"
)

// AgentTool interface that all tools must implement
type AgentTool interface {
	Name() string
	Description() string
	Call(ctx context.Context, input string) (string, error)
	GetAnthropicToolSpec() anthropic.ToolInputSchemaParam
}

func generateAnthropicSchema[T any]() anthropic.ToolInputSchemaParam {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)

	return anthropic.ToolInputSchemaParam{
		Properties: schema.Properties,
	}
}

type PresentationOutlineToolInput struct{}

// PresentationOutlineTool lists the slide deck so the assistant can point
// users at the right slide without entering presentation mode.
type PresentationOutlineTool struct {
	store *content.Store
}

func NewPresentationOutlineTool(store *content.Store) PresentationOutlineTool {
	return PresentationOutlineTool{store: store}
}

func (t PresentationOutlineTool) Name() string {
	return "presentation_outline"
}

func (t PresentationOutlineTool) Description() string {
	return "Lists every slide in the built-in carvedilol presentation with its number and title"
}

func (t PresentationOutlineTool) Call(ctx context.Context, input string) (string, error) {
	var b strings.Builder
	for n := 1; n <= content.TotalSlides; n++ {
		title, _ := t.store.SlideContext(n)
		questionCount := len(t.store.QuestionsForSlide(n))
		b.WriteString(fmt.Sprintf("Slide %d: %s (%d quiz questions)\n", n, title, questionCount))
	}
	return b.String(), nil
}

func (t PresentationOutlineTool) GetAnthropicToolSpec() anthropic.ToolInputSchemaParam {
	return generateAnthropicSchema[PresentationOutlineToolInput]()
}

type ReadSlideToolInput struct {
	SlideNumber int `json:"slide_number" jsonschema:"required,description=The slide number to read (1-7)"`
}

// ReadSlideTool returns one slide's script and background context.
type ReadSlideTool struct {
	store *content.Store
}

func NewReadSlideTool(store *content.Store) ReadSlideTool {
	return ReadSlideTool{store: store}
}

func (t ReadSlideTool) Name() string {
	return "read_slide"
}

func (t ReadSlideTool) Description() string {
	return "Reads the script and background context of one slide from the carvedilol presentation"
}

func (t ReadSlideTool) Call(ctx context.Context, input string) (string, error) {
	var params ReadSlideToolInput
	if err := json.Unmarshal([]byte(input), &params); err != nil {
		return "", fmt.Errorf("failed to parse read slide tool input: %v", err)
	}

	slide, ok := t.store.Slide(params.SlideNumber)
	if !ok {
		return "", fmt.Errorf("slide %d does not exist; the deck has slides 1-%d", params.SlideNumber, content.TotalSlides)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Slide %d: %s\n\nScript:\n%s\n\nBackground:\n%s\n", slide.Number, slide.Title, slide.Body, slide.Context))
	return b.String(), nil
}

func (t ReadSlideTool) GetAnthropicToolSpec() anthropic.ToolInputSchemaParam {
	return generateAnthropicSchema[ReadSlideToolInput]()
}
