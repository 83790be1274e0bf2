package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"slidechat/models"
	"slidechat/services/content"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// maxToolRounds bounds the tool-use loop so a misbehaving exchange cannot
// spin forever.
const maxToolRounds = 4

// Service is the general-purpose assistant: the node every turn lands on
// when the presentation router does not claim it.
type Service struct {
	client *anthropic.Client
	tools  []AgentTool
}

func NewService(anthropicAPIKey string, store *content.Store) (*Service, error) {
	client := anthropic.NewClient(option.WithAPIKey(anthropicAPIKey))

	tools := []AgentTool{
		NewPresentationOutlineTool(store),
		NewReadSlideTool(store),
	}

	return &Service{
		client: &client,
		tools:  tools,
	}, nil
}

// ProcessMessages runs the conversation through the model, executing tool
// calls until the model answers with plain text.
func (s *Service) ProcessMessages(ctx context.Context, messages []models.ConversationMessage) (string, error) {
	log.Printf("[INFO] Starting agent processing with %d messages", len(messages))

	anthropicMessages := s.convertMessages(messages)
	toolSpecs := s.buildAnthropicToolSpecs()

	for round := 0; round < maxToolRounds; round++ {
		response, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     anthropic.ModelClaude4Sonnet20250514,
			MaxTokens: 4096,
			System: []anthropic.TextBlockParam{
				{Text: AgentSystemPrompt},
			},
			Messages: anthropicMessages,
			Tools:    toolSpecs,
		})
		if err != nil {
			log.Printf("[ERROR] Failed to call Anthropic API: %v", err)
			return "", fmt.Errorf("failed to call Anthropic API: %w", err)
		}

		assistantText := ""
		var toolUses []anthropic.ToolUseBlock
		for _, block := range response.Content {
			switch block := block.AsAny().(type) {
			case anthropic.TextBlock:
				assistantText += block.Text
			case anthropic.ToolUseBlock:
				toolUses = append(toolUses, block)
			}
		}

		if len(toolUses) == 0 {
			log.Printf("[INFO] Agent processing completed after %d round(s)", round+1)
			return assistantText, nil
		}

		anthropicMessages = append(anthropicMessages, response.ToParam())

		var resultBlocks []anthropic.ContentBlockParamUnion
		for _, toolUse := range toolUses {
			inputJSON, _ := json.Marshal(toolUse.Input)
			log.Printf("[INFO] Executing tool %s", toolUse.Name)

			result, err := s.executeTool(ctx, toolUse.Name, string(inputJSON))
			if err != nil {
				log.Printf("[ERROR] Tool %s failed: %v", toolUse.Name, err)
				result = fmt.Sprintf("Error: %v", err)
			}

			resultBlocks = append(resultBlocks, anthropic.ContentBlockParamUnion{
				OfToolResult: &anthropic.ToolResultBlockParam{
					ToolUseID: toolUse.ID,
					Content: []anthropic.ToolResultBlockParamContentUnion{
						{OfText: &anthropic.TextBlockParam{Text: result}},
					},
				},
			})
		}
		anthropicMessages = append(anthropicMessages, anthropic.NewUserMessage(resultBlocks...))
	}

	return "", fmt.Errorf("agent exceeded %d tool rounds without a final answer", maxToolRounds)
}

func (s *Service) convertMessages(messages []models.ConversationMessage) []anthropic.MessageParam {
	var anthropicMessages []anthropic.MessageParam
	for _, msg := range messages {
		switch msg.Role {
		case models.RoleHuman:
			anthropicMessages = append(anthropicMessages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		case models.RoleAssistant:
			if msg.Content == "" {
				continue
			}
			anthropicMessages = append(anthropicMessages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}
	return anthropicMessages
}

func (s *Service) buildAnthropicToolSpecs() []anthropic.ToolUnionParam {
	var toolSpecs []anthropic.ToolUnionParam
	for _, tool := range s.tools {
		toolSpecs = append(toolSpecs, anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        tool.Name(),
				Description: anthropic.String(tool.Description()),
				InputSchema: tool.GetAnthropicToolSpec(),
			},
		})
	}
	return toolSpecs
}

func (s *Service) executeTool(ctx context.Context, toolName, arguments string) (string, error) {
	for _, tool := range s.tools {
		if tool.Name() == toolName {
			return tool.Call(ctx, arguments)
		}
	}
	return "", fmt.Errorf("tool %s not found", toolName)
}
