package config

import "github.com/JaimeStill/penguin/pkg/completion"

var agentEnv = &completion.Env{
	Provider:      "PENGUIN_AGENT_PROVIDER",
	BaseURL:       "PENGUIN_AGENT_BASE_URL",
	Token:         "PENGUIN_AGENT_TOKEN",
	Model:         "PENGUIN_AGENT_MODEL",
	Deployment:    "PENGUIN_AGENT_DEPLOYMENT",
	APIVersion:    "PENGUIN_AGENT_API_VERSION",
	AuthType:      "PENGUIN_AGENT_AUTH_TYPE",
	Temperature:   "PENGUIN_AGENT_TEMPERATURE",
	MaxTokens:     "PENGUIN_AGENT_MAX_TOKENS",
	Timeout:       "PENGUIN_AGENT_TIMEOUT",
	MaxConcurrent: "PENGUIN_AGENT_MAX_CONCURRENT",
}
